package models

import "slices"

type UnitType string

const (
	UnitStudio    UnitType = "STUDIO"
	UnitApartment UnitType = "APARTMENT"
	UnitTownhouse UnitType = "TOWNHOUSE"
	UnitPenthouse UnitType = "PENTHOUSE"
)

type BackgroundCheckStatus string

const (
	BackgroundCheckPending     BackgroundCheckStatus = "PENDING"
	BackgroundCheckApproved    BackgroundCheckStatus = "APPROVED"
	BackgroundCheckRejected    BackgroundCheckStatus = "REJECTED"
	BackgroundCheckNotRequired BackgroundCheckStatus = "NOT_REQUIRED"
)

type IssueCategory string

const (
	CategoryPlumbing         IssueCategory = "PLUMBING"
	CategoryElectrical       IssueCategory = "ELECTRICAL"
	CategoryHeatingCooling   IssueCategory = "HEATING_COOLING"
	CategoryAppliances       IssueCategory = "APPLIANCES"
	CategoryPestControl      IssueCategory = "PEST_CONTROL"
	CategoryStructural       IssueCategory = "STRUCTURAL"
	CategorySafetySecurity   IssueCategory = "SAFETY_SECURITY"
	CategoryCleaning         IssueCategory = "CLEANING"
	CategoryNoiseComplaint   IssueCategory = "NOISE_COMPLAINT"
	CategoryWaterDamage      IssueCategory = "WATER_DAMAGE"
	CategoryLocksKeys        IssueCategory = "LOCKS_KEYS"
	CategoryWindowsDoors     IssueCategory = "WINDOWS_DOORS"
	CategoryLighting         IssueCategory = "LIGHTING"
	CategoryInternetCable    IssueCategory = "INTERNET_CABLE"
	CategoryParking          IssueCategory = "PARKING"
	CategoryGarbageRecycling IssueCategory = "GARBAGE_RECYCLING"
	CategoryLandscaping      IssueCategory = "LANDSCAPING"
	CategoryOther            IssueCategory = "OTHER"
)

type IssuePriority string

const (
	PriorityLow       IssuePriority = "LOW"
	PriorityMedium    IssuePriority = "MEDIUM"
	PriorityHigh      IssuePriority = "HIGH"
	PriorityUrgent    IssuePriority = "URGENT"
	PriorityEmergency IssuePriority = "EMERGENCY"
)

type IssueStatus string

const (
	IssueOpen            IssueStatus = "OPEN"
	IssueInProgress      IssueStatus = "IN_PROGRESS"
	IssuePendingParts    IssueStatus = "PENDING_PARTS"
	IssuePendingApproval IssueStatus = "PENDING_APPROVAL"
	IssueScheduled       IssueStatus = "SCHEDULED"
	IssueResolved        IssueStatus = "RESOLVED"
	IssueClosed          IssueStatus = "CLOSED"
	IssueCancelled       IssueStatus = "CANCELLED"
	IssueDuplicate       IssueStatus = "DUPLICATE"
)

var issueStatuses = []IssueStatus{
	IssueOpen, IssueInProgress, IssuePendingParts, IssuePendingApproval, IssueScheduled,
	IssueResolved, IssueClosed, IssueCancelled, IssueDuplicate,
}

// Valid reports whether s is a status the backend knows.
func (s IssueStatus) Valid() bool {
	return slices.Contains(issueStatuses, s)
}

// Terminal statuses need no further work.
func (s IssueStatus) Terminal() bool {
	switch s {
	case IssueResolved, IssueClosed, IssueCancelled, IssueDuplicate:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentRent            PaymentType = "RENT"
	PaymentSecurityDeposit PaymentType = "SECURITY_DEPOSIT"
	PaymentLateFee         PaymentType = "LATE_FEE"
	PaymentUtility         PaymentType = "UTILITY"
	PaymentOther           PaymentType = "OTHER"
)

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCheck        PaymentMethod = "CHECK"
	MethodCash         PaymentMethod = "CASH"
	MethodStripe       PaymentMethod = "STRIPE"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)
