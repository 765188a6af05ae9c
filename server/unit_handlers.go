package server

import (
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/models"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeAttempts = 10
)

func randomRoomCode() string {
	var b strings.Builder
	for range auth.RoomCodeLength {
		b.WriteByte(roomCodeAlphabet[rand.IntN(len(roomCodeAlphabet))])
	}
	return b.String()
}

// newRoomCode returns a room code no stored unit holds.
func (s *Server) newRoomCode() (string, bool) {
	for range roomCodeAttempts {
		code := randomRoomCode()
		if _, err := s.properties.GetUnitByRoomCode(code); err != nil {
			return code, true
		}
	}
	return "", false
}

// ListUnitsHandler returns every unit in the principal's buildings.
func (s *Server) ListUnitsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buildings, err := s.properties.ListBuildings(ownerFilter(principalFrom(r.Context())))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		units := lo.FlatMap(buildings, func(b *propertyrepo.BuildingRecord, _ int) []models.Unit {
			return s.unitsOf(b.Building.ID)
		})
		writeJSON(w, http.StatusOK, units)
	}
}

func (s *Server) ListBuildingUnitsHandler(availableOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.ownedBuilding(w, r, "buildingId")
		if !ok {
			return
		}
		units := s.unitsOf(record.Building.ID)
		if availableOnly {
			units = lo.Filter(units, func(u models.Unit, _ int) bool { return u.IsAvailable })
		}
		writeJSON(w, http.StatusOK, units)
	}
}

// GetUnitHandler serves the unit to its building's owner and to its tenant.
func (s *Server) GetUnitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		unit, err := s.properties.GetUnit(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "Unit not found")
			return
		}
		p := principalFrom(r.Context())
		building, err := s.properties.GetBuilding(unit.BuildingID)
		if err != nil {
			writeError(w, http.StatusNotFound, "Building not found")
			return
		}
		if building.OwnerID != p.ID() && unit.TenantID != p.ID() && !p.Account.IsAdmin() {
			writeError(w, http.StatusForbidden, "Access Denied")
			return
		}
		writeJSON(w, http.StatusOK, s.unitView(unit))
	}
}

func (s *Server) CreateUnitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UnitRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.UnitNumber) == "" || req.BuildingID == 0 {
			writeError(w, http.StatusBadRequest, "Unit number and building are required")
			return
		}
		building, err := s.properties.GetBuilding(req.BuildingID)
		if err != nil {
			writeError(w, http.StatusNotFound, "Building not found")
			return
		}
		p := principalFrom(r.Context())
		if building.OwnerID != p.ID() && !p.Account.IsAdmin() {
			writeError(w, http.StatusForbidden, "Access Denied")
			return
		}

		code, ok := s.newRoomCode()
		if !ok {
			writeError(w, http.StatusInternalServerError, "Failed to generate room code")
			return
		}
		now := s.timestamp()
		record := &propertyrepo.UnitRecord{
			BuildingID: building.Building.ID,
			Unit: models.Unit{
				UnitNumber:         req.UnitNumber,
				Floor:              req.Floor,
				Bedrooms:           req.Bedrooms,
				Bathrooms:          req.Bathrooms,
				SquareFeet:         req.SquareFeet,
				MonthlyRent:        lo.FromPtrOr(req.MonthlyRent, decimal.Zero),
				SecurityDeposit:    lo.FromPtrOr(req.SecurityDeposit, decimal.Zero),
				UnitType:           lo.CoalesceOrEmpty(req.UnitType, models.UnitApartment),
				IsAvailable:        lo.FromPtrOr(req.IsAvailable, true),
				RoomCode:           code,
				Description:        req.Description,
				Furnished:          req.Furnished,
				PetsAllowed:        req.PetsAllowed,
				SmokingAllowed:     req.SmokingAllowed,
				HasAirConditioning: req.HasAirConditioning,
				HasWashingMachine:  req.HasWashingMachine,
				HasDishwasher:      req.HasDishwasher,
				HasBalcony:         req.HasBalcony,
				LeaseStartDate:     req.LeaseStartDate,
				LeaseEndDate:       req.LeaseEndDate,
				CreatedAt:          now,
				UpdatedAt:          now,
			},
		}
		if err := s.properties.UpsertUnit(record); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, s.unitView(record))
	}
}

// RegenerateRoomCodeHandler replaces a unit's room code. The old code stops working at once.
func (s *Server) RegenerateRoomCodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		unit, err := s.properties.GetUnit(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "Unit not found")
			return
		}
		building, err := s.properties.GetBuilding(unit.BuildingID)
		if err != nil {
			writeError(w, http.StatusNotFound, "Building not found")
			return
		}
		p := principalFrom(r.Context())
		if building.OwnerID != p.ID() && !p.Account.IsAdmin() {
			writeError(w, http.StatusForbidden, "Access Denied")
			return
		}

		code, ok := s.newRoomCode()
		if !ok {
			writeError(w, http.StatusInternalServerError, "Failed to generate room code")
			return
		}
		unit.Unit.RoomCode = code
		unit.Unit.UpdatedAt = s.timestamp()
		if err := s.properties.UpsertUnit(unit); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, models.RoomCodeResponse{
			ID:         unit.Unit.ID,
			RoomCode:   code,
			UnitNumber: unit.Unit.UnitNumber,
			Building:   &models.BuildingRef{ID: building.Building.ID, Name: building.Building.Name, Address: building.Building.Address},
		})
	}
}
