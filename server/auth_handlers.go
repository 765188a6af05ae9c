package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-colten/auth"
	"github.com/jrsteele09/go-colten/models"
	"github.com/jrsteele09/go-colten/server/propertyrepo"
	"github.com/jrsteele09/go-colten/token"
	"github.com/jrsteele09/go-colten/users"
)

const (
	msgInvalidLogin     = "Error: Invalid email or password!"
	msgEmailInUse       = "Error: Email is already in use!"
	msgRoleNotFound     = "Error: Role is not found."
	msgInvalidRoomCode  = "Invalid room code"
	msgUnitOccupied     = "Unit is already occupied"
	msgRequiredFields   = "First name, last name, email and password are required"
	msgTenantRegistered = "Tenant registered successfully"
)

// LoginHandler answers POST /auth/login. The role comes back as a bare string, e.g. OWNER.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		account, err := s.accounts.GetByEmail(strings.TrimSpace(req.Email))
		if err != nil || !users.CheckPasswordHash(req.Password, account.PasswordHash) {
			log.Debug().Str("email", req.Email).Msg("mockapi: login rejected")
			writeError(w, http.StatusBadRequest, msgInvalidLogin)
			return
		}

		resp, err := s.authResponse(account, "")
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterHandler answers POST /auth/register for owner accounts.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if msg := validateNewAccount(req.FirstName, req.LastName, req.Email, req.Password); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		if _, err := s.accounts.GetByEmail(req.Email); err == nil {
			writeError(w, http.StatusBadRequest, msgEmailInUse)
			return
		}

		role := users.Canonical(strings.ToUpper(req.Role))
		if role == "" {
			role = users.RoleOwner
		}
		if role != users.RoleOwner && role != users.RoleTenant {
			writeError(w, http.StatusBadRequest, msgRoleNotFound)
			return
		}

		account := &users.Account{
			Identity: users.Identity{
				Email:     req.Email,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Roles:     []users.RoleType{role},
			},
			Phone:       req.Phone,
			CompanyName: req.CompanyName,
		}
		if err := s.createAccount(account, req.Password); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create account")
			return
		}

		resp, err := s.authResponse(account, "User registered successfully!")
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// TenantRegisterHandler answers POST /tenants/register, moving the new tenant into the
// unit that holds the room code.
func (s *Server) TenantRegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.TenantRegistrationRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if msg := validateNewAccount(req.FirstName, req.LastName, req.Email, req.Password); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		if _, err := s.accounts.GetByEmail(req.Email); err == nil {
			writeError(w, http.StatusBadRequest, msgEmailInUse)
			return
		}

		code := auth.NormalizeRoomCode(req.RoomCode)
		unit, err := s.properties.GetUnitByRoomCode(code)
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRoomCode)
			return
		}
		if unit.TenantID != 0 {
			writeError(w, http.StatusBadRequest, msgUnitOccupied)
			return
		}

		account := &users.Account{
			Identity: users.Identity{
				Email:     req.Email,
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Roles:     []users.RoleType{users.RoleTenant},
			},
			Phone:    req.Phone,
			RoomCode: code,
		}
		if err := s.createAccount(account, req.Password); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create account")
			return
		}

		unit.TenantID = account.ID
		unit.Unit.IsAvailable = false
		unit.Unit.LeaseStartDate = req.LeaseStartDate
		unit.Unit.LeaseEndDate = req.LeaseEndDate
		unit.Unit.UpdatedAt = s.timestamp()
		if err := s.properties.UpsertUnit(unit); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to assign unit")
			return
		}

		resp, err := s.authResponse(account, msgTenantRegistered)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to issue token")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ValidateRoomCodeHandler answers POST /tenants/validate-room-code with the unit the code
// belongs to.
func (s *Server) ValidateRoomCodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			RoomCode string `json:"roomCode"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if err := auth.ValidateRoomCodeFormat(req.RoomCode); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRoomCode)
			return
		}
		unit, err := s.properties.GetUnitByRoomCode(auth.NormalizeRoomCode(req.RoomCode))
		if err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidRoomCode)
			return
		}
		if unit.TenantID != 0 {
			writeError(w, http.StatusBadRequest, msgUnitOccupied)
			return
		}
		writeJSON(w, http.StatusOK, s.unitView(unit))
	}
}

func validateNewAccount(firstName, lastName, email, password string) string {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" || email == "" || password == "" {
		return msgRequiredFields
	}
	if err := users.ValidateEmail(email); err != nil {
		return "Error: " + err.Error()
	}
	if err := users.ValidatePasswordStrength(password); err != nil {
		return "Error: " + err.Error()
	}
	return ""
}

// createAccount hashes password onto account and stores it, assigning its ID.
func (s *Server) createAccount(account *users.Account, password string) error {
	hash, err := users.HashPassword(password)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	if err := s.accounts.Upsert(account); err != nil {
		return err
	}
	log.Info().Int64("id", account.ID).Str("email", account.Email).Strs("roles", account.RoleNames()).Msg("mockapi: account created")
	return nil
}

// authResponse signs a token for account. The primary role is reported without its
// ROLE_ prefix.
func (s *Server) authResponse(account *users.Account, message string) (*auth.AuthResponse, error) {
	signed, err := token.Issue(s.signer, account.Email, account.RoleNames(), s.nowTime(), s.tokenTTL)
	if err != nil {
		return nil, err
	}
	var role users.RoleClaim
	if len(account.Roles) > 0 {
		role = users.SingleRole(account.Roles[0].Bare())
	}
	return &auth.AuthResponse{
		Token:     signed,
		Type:      "Bearer",
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      role,
		Message:   message,
	}, nil
}

// unitView is the unit as served, with its building reference filled in.
func (s *Server) unitView(record *propertyrepo.UnitRecord) models.Unit {
	unit := record.Unit
	if building, err := s.properties.GetBuilding(record.BuildingID); err == nil {
		unit.Building = &models.BuildingRef{
			ID:      building.Building.ID,
			Name:    building.Building.Name,
			Address: building.Building.Address,
		}
	}
	if record.TenantID != 0 {
		if tenant, err := s.accounts.GetByID(record.TenantID); err == nil {
			unit.Tenant = &models.Tenant{
				ID:          tenant.ID,
				Email:       tenant.Email,
				FirstName:   tenant.FirstName,
				LastName:    tenant.LastName,
				PhoneNumber: tenant.Phone,
				IsActive:    true,
			}
		}
	}
	return unit
}
