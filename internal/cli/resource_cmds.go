package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-colten/guard"
	"github.com/jrsteele09/go-colten/models"
)

// guarded wraps run so that it only executes when the guard allows path.
func guarded(path func(args []string) string, run func(cmd *cobra.Command, app *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}
		if err := app.Navigate(path(args)); err != nil {
			return err
		}
		return run(cmd, app, args)
	}
}

func fixed(path string) func([]string) string {
	return func([]string) string { return path }
}

func withID(prefix string) func([]string) string {
	return func(args []string) string { return prefix + "/" + args[0] }
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func yesNo(b bool) string {
	return lo.Ternary(b, "yes", "no")
}

func newBuildingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "buildings",
		Aliases: []string{"building"},
		Short:   "Manage your buildings",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your buildings",
		RunE: guarded(fixed(guard.RouteBuildings), func(cmd *cobra.Command, app *App, _ []string) error {
			buildings, err := app.Client.Buildings().List(cmd.Context())
			if err != nil {
				return err
			}
			if len(buildings) == 0 {
				app.info("No buildings yet. Create one with `colten buildings create`.")
				return nil
			}
			data := pterm.TableData{{"ID", "NAME", "ADDRESS", "CITY", "FLOORS"}}
			for _, b := range buildings {
				data = append(data, []string{strconv.FormatInt(b.ID, 10), b.Name, b.Address, b.City, strconv.Itoa(b.Floors)})
			}
			return app.table(data)
		}),
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a building with its units and occupancy",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(withID("/buildings"), func(cmd *cobra.Command, app *App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := app.Client.Buildings().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			stats := models.ComputeBuildingStats(b.Units)
			if err := app.table(pterm.TableData{
				{"FIELD", "VALUE"},
				{"Name", b.Name},
				{"Address", b.Address},
				{"Units", fmt.Sprintf("%d (%d available)", stats.TotalUnits, stats.AvailableUnits)},
				{"Occupancy", stats.OccupancyRate.String() + "%"},
				{"Monthly revenue", stats.TotalRevenue.StringFixed(2)},
				{"Average rent", stats.AverageRent.StringFixed(2)},
			}); err != nil {
				return err
			}
			if len(b.Units) == 0 {
				return nil
			}
			return app.table(unitTable(b.Units))
		}),
	}

	var req models.BuildingRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a building",
		RunE: guarded(fixed(guard.RouteBuildingCreate), func(cmd *cobra.Command, app *App, _ []string) error {
			if req.Name == "" || req.Address == "" {
				return errors.New("--name and --address are required")
			}
			b, err := app.Client.Buildings().Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			app.success("Created building %d: %s", b.ID, b.Name)
			return nil
		}),
	}
	create.Flags().StringVar(&req.Name, "name", "", "building name")
	create.Flags().StringVar(&req.Address, "address", "", "street address")
	create.Flags().StringVar(&req.City, "city", "", "city")
	create.Flags().StringVar(&req.Country, "country", "", "country")
	create.Flags().IntVar(&req.Floors, "floors", 0, "number of floors")
	create.Flags().BoolVar(&req.HasElevator, "elevator", false, "the building has an elevator")
	create.Flags().BoolVar(&req.PetFriendly, "pet-friendly", false, "pets are welcome")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a building and its units",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(withID("/buildings"), func(cmd *cobra.Command, app *App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Client.Buildings().Delete(cmd.Context(), id); err != nil {
				return err
			}
			app.success("Deleted building %d", id)
			return nil
		}),
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}

func unitTable(units []models.Unit) pterm.TableData {
	data := pterm.TableData{{"ID", "UNIT", "TYPE", "RENT", "AVAILABLE", "ROOM CODE", "TENANT"}}
	for _, u := range units {
		tenant := "-"
		if u.Tenant != nil {
			tenant = u.Tenant.FullName()
		}
		data = append(data, []string{
			strconv.FormatInt(u.ID, 10), u.UnitNumber, string(u.UnitType), u.MonthlyRent.StringFixed(2),
			yesNo(u.IsAvailable), u.RoomCode, tenant,
		})
	}
	return data
}

func newUnitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "units",
		Aliases: []string{"unit"},
		Short:   "Manage units",
	}

	var buildingID int64
	var availableOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List units, optionally for one building",
		RunE: guarded(fixed(guard.RouteUnits), func(cmd *cobra.Command, app *App, _ []string) error {
			var (
				units []models.Unit
				err   error
			)
			switch {
			case buildingID != 0 && availableOnly:
				units, err = app.Client.Units().AvailableByBuilding(cmd.Context(), buildingID)
			case buildingID != 0:
				units, err = app.Client.Units().ByBuilding(cmd.Context(), buildingID)
			default:
				units, err = app.Client.Units().List(cmd.Context())
				if availableOnly {
					units = lo.Filter(units, func(u models.Unit, _ int) bool { return u.IsAvailable })
				}
			}
			if err != nil {
				return err
			}
			return app.table(unitTable(units))
		}),
	}
	list.Flags().Int64Var(&buildingID, "building", 0, "only units of this building")
	list.Flags().BoolVar(&availableOnly, "available", false, "only vacant units")

	roomCode := &cobra.Command{
		Use:   "regenerate-room-code <id>",
		Short: "Issue a new room code for a unit; the old one stops working",
		Args:  cobra.ExactArgs(1),
		RunE: guarded(func(args []string) string { return "/units/" + args[0] + "/edit" }, func(cmd *cobra.Command, app *App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := app.Client.Units().RegenerateRoomCode(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.success("Unit %s has room code %s", resp.UnitNumber, resp.RoomCode)
			return nil
		}),
	}

	cmd.AddCommand(list, roomCode)
	return cmd
}

func newTenantsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tenants", Short: "View tenants"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the tenants of your buildings",
		RunE: guarded(fixed(guard.RouteTenants), func(cmd *cobra.Command, app *App, _ []string) error {
			tenants, err := app.Client.Tenants().List(cmd.Context())
			if err != nil {
				return err
			}
			data := pterm.TableData{{"ID", "NAME", "EMAIL", "UNIT", "BACKGROUND CHECK"}}
			for _, t := range tenants {
				unit := "-"
				if t.Unit != nil {
					unit = t.Unit.UnitNumber
				}
				data = append(data, []string{strconv.FormatInt(t.ID, 10), t.FullName(), t.Email, unit, string(t.BackgroundCheckStatus)})
			}
			return app.table(data)
		}),
	})
	return cmd
}

func newIssuesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "issues", Short: "View maintenance issues"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List issues: yours as a tenant, your buildings' as an owner",
		RunE: guarded(fixed(guard.RouteIssues), func(cmd *cobra.Command, app *App, _ []string) error {
			var (
				issues []models.Issue
				err    error
			)
			if app.Manager.IsTenant() {
				issues, err = app.Client.Issues().Mine(cmd.Context())
			} else {
				issues, err = app.Client.Issues().ForOwner(cmd.Context())
			}
			if err != nil {
				return err
			}
			data := pterm.TableData{{"ID", "TITLE", "CATEGORY", "PRIORITY", "STATUS"}}
			for _, i := range issues {
				data = append(data, []string{strconv.FormatInt(i.ID, 10), i.Title, string(i.Category), string(i.Priority), string(i.Status)})
			}
			return app.table(data)
		}),
	})
	return cmd
}

func newPaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "payments", Short: "View payments"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: guarded(fixed(guard.RoutePayments), func(cmd *cobra.Command, app *App, _ []string) error {
			payments, err := app.Client.Payments().List(cmd.Context())
			if err != nil {
				return err
			}
			data := pterm.TableData{{"ID", "AMOUNT", "TYPE", "STATUS", "DUE", "PAID"}}
			for _, p := range payments {
				data = append(data, []string{
					strconv.FormatInt(p.ID, 10), p.Amount.StringFixed(2), string(p.PaymentType), string(p.Status),
					lo.CoalesceOrEmpty(p.DueDate, "-"), lo.CoalesceOrEmpty(p.PaymentDate, "-"),
				})
			}
			return app.table(data)
		}),
	})
	return cmd
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for your role",
		RunE: guarded(fixed(guard.RouteDashboard), func(cmd *cobra.Command, app *App, _ []string) error {
			if app.Manager.IsTenant() && !app.Manager.IsOwner() {
				d, err := app.Client.Dashboard().Tenant(cmd.Context())
				if err != nil {
					return err
				}
				if d.Unit == nil {
					app.info("You are not assigned to a unit yet")
					return nil
				}
				return app.table(pterm.TableData{
					{"FIELD", "VALUE"},
					{"Unit", d.Unit.UnitNumber},
					{"Rent", d.Unit.MonthlyRent.StringFixed(2)},
					{"Open issues", strconv.Itoa(len(d.OpenIssues))},
				})
			}

			d, err := app.Client.Dashboard().Owner(cmd.Context())
			if err != nil {
				return err
			}
			return app.table(pterm.TableData{
				{"FIELD", "VALUE"},
				{"Buildings", strconv.Itoa(d.TotalBuildings)},
				{"Units", fmt.Sprintf("%d (%d occupied, %d available)", d.TotalUnits, d.OccupiedUnits, d.AvailableUnits)},
				{"Tenants", strconv.Itoa(d.TotalTenants)},
				{"Open issues", strconv.Itoa(d.OpenIssues)},
				{"Monthly revenue", d.MonthlyRevenue.StringFixed(2)},
			})
		}),
	}
}
