package propertyrepo

import (
	"errors"

	"github.com/jrsteele09/go-colten/models"
)

var ErrNotFound = errors.New("not found")

// BuildingRecord is a stored building and the account that owns it.
type BuildingRecord struct {
	OwnerID  int64
	Building models.Building
}

// UnitRecord is a stored unit. TenantID is zero while the unit is vacant.
type UnitRecord struct {
	BuildingID int64
	TenantID   int64
	Unit       models.Unit
}

type Repo interface {
	UpsertBuilding(record *BuildingRecord) error
	GetBuilding(id int64) (*BuildingRecord, error)
	ListBuildings(ownerID int64) ([]*BuildingRecord, error)
	DeleteBuilding(id int64) error

	UpsertUnit(record *UnitRecord) error
	GetUnit(id int64) (*UnitRecord, error)
	GetUnitByRoomCode(code string) (*UnitRecord, error)
	ListUnits(buildingID int64) ([]*UnitRecord, error)
}
