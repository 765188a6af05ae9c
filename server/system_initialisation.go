package server

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jrsteele09/go-colten/models"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
	"github.com/jrsteele09/go-colten/users"
)

const (
	DemoOwnerEmail    = "owner@colten.dev"
	DemoOwnerPassword = "Password123"
	DemoRoomCode      = "DEMO2024"
)

// InitialiseSystem seeds a demo owner with one building and a vacant unit, so a tenant
// can register against DemoRoomCode. It is a no-op when the owner already exists.
func (s *Server) InitialiseSystem() error {
	if existing, err := s.accounts.GetByEmail(DemoOwnerEmail); err == nil && existing != nil {
		log.Debug().Str("email", DemoOwnerEmail).Msg("mockapi: demo owner already exists")
		return nil
	}

	owner := &users.Account{
		Identity: users.Identity{
			Email:     DemoOwnerEmail,
			FirstName: "Olivia",
			LastName:  "Owner",
			Roles:     []users.RoleType{users.RoleOwner},
		},
		CompanyName: "Colten Properties",
	}
	if err := s.createAccount(owner, DemoOwnerPassword); err != nil {
		return errors.Wrap(err, "[server InitialiseSystem] failed to create demo owner")
	}

	now := s.timestamp()
	building := &propertyrepo.BuildingRecord{
		OwnerID: owner.ID,
		Building: models.Building{
			Name:        "Harbour View",
			Address:     "1 Quay Street",
			City:        "Auckland",
			Country:     "New Zealand",
			Floors:      4,
			HasElevator: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	if err := s.properties.UpsertBuilding(building); err != nil {
		return errors.Wrap(err, "[server InitialiseSystem] failed to create demo building")
	}

	unit := &propertyrepo.UnitRecord{
		BuildingID: building.Building.ID,
		Unit: models.Unit{
			UnitNumber:      "1A",
			Floor:           1,
			Bedrooms:        2,
			Bathrooms:       1,
			SquareFeet:      850,
			MonthlyRent:     decimal.NewFromInt(1500),
			SecurityDeposit: decimal.NewFromInt(3000),
			UnitType:        models.UnitApartment,
			IsAvailable:     true,
			RoomCode:        DemoRoomCode,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
	if err := s.properties.UpsertUnit(unit); err != nil {
		return errors.Wrap(err, "[server InitialiseSystem] failed to create demo unit")
	}

	log.Info().
		Str("owner", DemoOwnerEmail).
		Str("password", DemoOwnerPassword).
		Str("room_code", DemoRoomCode).
		Msg("mockapi: demo data seeded")
	return nil
}
