package server

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/jrsteele09/go-colten/models"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
)

// ownerFilter is the owner ID to list for: everything for admins.
func ownerFilter(p *Principal) int64 {
	if p.Account.IsAdmin() {
		return 0
	}
	return p.ID()
}

// ownedBuilding loads the building named by the id path parameter and checks that the
// principal may manage it.
func (s *Server) ownedBuilding(w http.ResponseWriter, r *http.Request, param string) (*propertyrepo.BuildingRecord, bool) {
	id, ok := pathID(w, r, param)
	if !ok {
		return nil, false
	}
	record, err := s.properties.GetBuilding(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Building not found")
		return nil, false
	}
	p := principalFrom(r.Context())
	if record.OwnerID != p.ID() && !p.Account.IsAdmin() {
		writeError(w, http.StatusForbidden, "Access Denied")
		return nil, false
	}
	return record, true
}

func (s *Server) unitsOf(buildingID int64) []models.Unit {
	records, _ := s.properties.ListUnits(buildingID)
	return lo.Map(records, func(u *propertyrepo.UnitRecord, _ int) models.Unit { return s.unitView(u) })
}

func (s *Server) ListBuildingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.properties.ListBuildings(ownerFilter(principalFrom(r.Context())))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, lo.Map(records, func(b *propertyrepo.BuildingRecord, _ int) models.Building {
			return b.Building
		}))
	}
}

// GetBuildingHandler returns the building with its units.
func (s *Server) GetBuildingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.ownedBuilding(w, r, "id")
		if !ok {
			return
		}
		building := record.Building
		building.Units = s.unitsOf(building.ID)
		writeJSON(w, http.StatusOK, building)
	}
}

func (s *Server) CreateBuildingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BuildingRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
			writeError(w, http.StatusBadRequest, "Building name and address are required")
			return
		}

		now := s.timestamp()
		record := &propertyrepo.BuildingRecord{
			OwnerID:  principalFrom(r.Context()).ID(),
			Building: applyBuildingRequest(models.Building{CreatedAt: now}, req),
		}
		record.Building.UpdatedAt = now
		if err := s.properties.UpsertBuilding(record); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, record.Building)
	}
}

func (s *Server) UpdateBuildingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.ownedBuilding(w, r, "id")
		if !ok {
			return
		}
		var req models.BuildingRequest
		if !decodeBody(w, r, &req) {
			return
		}
		record.Building = applyBuildingRequest(record.Building, req)
		record.Building.UpdatedAt = s.timestamp()
		if err := s.properties.UpsertBuilding(record); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, record.Building)
	}
}

func (s *Server) DeleteBuildingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := s.ownedBuilding(w, r, "id")
		if !ok {
			return
		}
		if err := s.properties.DeleteBuilding(record.Building.ID); err != nil {
			writeError(w, http.StatusNotFound, "Building not found")
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Building deleted successfully"})
	}
}

// applyBuildingRequest copies the non-zero fields of req onto b. Boolean amenities are
// only ever switched on by a request.
func applyBuildingRequest(b models.Building, req models.BuildingRequest) models.Building {
	b.Name = lo.CoalesceOrEmpty(req.Name, b.Name)
	b.Address = lo.CoalesceOrEmpty(req.Address, b.Address)
	b.City = lo.CoalesceOrEmpty(req.City, b.City)
	b.State = lo.CoalesceOrEmpty(req.State, b.State)
	b.ZipCode = lo.CoalesceOrEmpty(req.ZipCode, b.ZipCode)
	b.Country = lo.CoalesceOrEmpty(req.Country, b.Country)
	b.Description = lo.CoalesceOrEmpty(req.Description, b.Description)
	b.ImageURL = lo.CoalesceOrEmpty(req.ImageURL, b.ImageURL)
	b.Floors = lo.CoalesceOrEmpty(req.Floors, b.Floors)
	b.YearBuilt = lo.CoalesceOrEmpty(req.YearBuilt, b.YearBuilt)
	b.ParkingSpaces = lo.CoalesceOrEmpty(req.ParkingSpaces, b.ParkingSpaces)
	b.HasElevator = b.HasElevator || req.HasElevator
	b.HasLaundry = b.HasLaundry || req.HasLaundry
	b.HasGym = b.HasGym || req.HasGym
	b.HasPool = b.HasPool || req.HasPool
	b.PetFriendly = b.PetFriendly || req.PetFriendly
	return b
}
