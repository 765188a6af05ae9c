package propertyrepo

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface.
// Records are copied on the way in and out.
type InMemoryRepo struct {
	mu         sync.RWMutex
	buildings  map[int64]BuildingRecord
	units      map[int64]UnitRecord
	roomCodes  map[string]int64
	nextBldgID int64
	nextUnitID int64
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		buildings:  make(map[int64]BuildingRecord),
		units:      make(map[int64]UnitRecord),
		roomCodes:  make(map[string]int64),
		nextBldgID: 1,
		nextUnitID: 1,
	}
}

// UpsertBuilding stores record, assigning the next ID when it has none.
func (r *InMemoryRepo) UpsertBuilding(record *BuildingRecord) error {
	if record == nil {
		return errors.New("building record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record.Building.ID == 0 {
		record.Building.ID = r.nextBldgID
	}
	if record.Building.ID >= r.nextBldgID {
		r.nextBldgID = record.Building.ID + 1
	}
	stored := *record
	stored.Building.Units = nil
	r.buildings[record.Building.ID] = stored
	return nil
}

func (r *InMemoryRepo) GetBuilding(id int64) (*BuildingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.buildings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

// ListBuildings returns the buildings owned by ownerID in ID order. An ownerID of zero
// lists every building.
func (r *InMemoryRepo) ListBuildings(ownerID int64) ([]*BuildingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*BuildingRecord, 0, len(r.buildings))
	for _, v := range r.buildings {
		if ownerID != 0 && v.OwnerID != ownerID {
			continue
		}
		record := v
		list = append(list, &record)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Building.ID < list[j].Building.ID
	})
	return list, nil
}

// DeleteBuilding removes the building and its units.
func (r *InMemoryRepo) DeleteBuilding(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buildings[id]; !ok {
		return ErrNotFound
	}
	delete(r.buildings, id)
	for unitID, u := range r.units {
		if u.BuildingID == id {
			delete(r.roomCodes, u.Unit.RoomCode)
			delete(r.units, unitID)
		}
	}
	return nil
}

// UpsertUnit stores record and indexes its room code. A room code already held by
// another unit is rejected.
func (r *InMemoryRepo) UpsertUnit(record *UnitRecord) error {
	if record == nil {
		return errors.New("unit record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buildings[record.BuildingID]; !ok {
		return ErrNotFound
	}
	code := strings.ToUpper(record.Unit.RoomCode)
	if holder, taken := r.roomCodes[code]; taken && code != "" && holder != record.Unit.ID {
		return errors.New("room code already in use")
	}

	if record.Unit.ID == 0 {
		record.Unit.ID = r.nextUnitID
	}
	if record.Unit.ID >= r.nextUnitID {
		r.nextUnitID = record.Unit.ID + 1
	}
	if previous, ok := r.units[record.Unit.ID]; ok {
		delete(r.roomCodes, previous.Unit.RoomCode)
	}
	record.Unit.RoomCode = code
	r.units[record.Unit.ID] = *record
	if code != "" {
		r.roomCodes[code] = record.Unit.ID
	}
	return nil
}

func (r *InMemoryRepo) GetUnit(id int64) (*UnitRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.units[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *InMemoryRepo) GetUnitByRoomCode(code string) (*UnitRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.roomCodes[strings.ToUpper(code)]
	if !ok {
		return nil, ErrNotFound
	}
	record := r.units[id]
	return &record, nil
}

// ListUnits returns the units of buildingID in ID order. A buildingID of zero lists
// every unit.
func (r *InMemoryRepo) ListUnits(buildingID int64) ([]*UnitRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*UnitRecord, 0)
	for _, v := range r.units {
		if buildingID != 0 && v.BuildingID != buildingID {
			continue
		}
		record := v
		list = append(list, &record)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Unit.ID < list[j].Unit.ID
	})
	return list, nil
}
