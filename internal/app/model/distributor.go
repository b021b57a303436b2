package model

import (
	"time"

	"gorm.io/gorm"
)

type ProfileStatus string

const (
	ProfileStatusPending  ProfileStatus = "pending"
	ProfileStatusApproved ProfileStatus = "approved"
	ProfileStatusRejected ProfileStatus = "rejected"
)

// The five onboarding steps. Each step is saved as a whole: re-submitting a
// step replaces its prior value, there is no field-level merge.

// StepCompany is step 1: legal entity and addresses
type StepCompany struct {
	LegalName         string `json:"legal_name"`
	TradingName       string `json:"trading_name"`
	CompanyRegNo      string `json:"company_reg_no"`
	TaxID             string `json:"tax_id"`
	YearEstablished   string `json:"year_established"`
	Website           string `json:"website"`
	Country           string `json:"country"`
	Phone             string `json:"phone"`
	RegisteredAddress string `json:"registered_address"`
	ShippingAddress   string `json:"shipping_address"`
	SameAsRegistered  bool   `json:"same_as_registered"`
}

// StepContacts is step 2: primary admin contact plus departmental contacts.
// WorkEmail becomes the profile key on finalize.
type StepContacts struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	JobTitle     string `json:"job_title"`
	WorkEmail    string `json:"work_email"`
	PhoneCountry string `json:"phone_country"`
	PhoneNumber  string `json:"phone_number"`
	FinanceName  string `json:"finance_name"`
	FinanceEmail string `json:"finance_email"`
	OpsName      string `json:"ops_name"`
	OpsEmail     string `json:"ops_email"`
	SalesName    string `json:"sales_name"`
	SalesEmail   string `json:"sales_email"`
}

// StepOperations is step 3: distribution footprint
type StepOperations struct {
	DistributorType string   `json:"distributor_type"`
	Industries      []string `json:"industries"`
	Countries       []string `json:"countries"`
	Locations       string   `json:"locations"`
}

// StepOrdering is step 4: expected order cadence and volume
type StepOrdering struct {
	OrderFrequency string `json:"order_frequency"`
	OrderSize      string `json:"order_size"`
}

// StepBilling is step 5: payment terms and authorization
type StepBilling struct {
	PaymentMethod string `json:"payment_method"`
	CreditTerms   string `json:"credit_terms"`
	Authorized    bool   `json:"authorized"`
	TermsAgreed   bool   `json:"terms_agreed"`
}

// DistributorDraft accumulates the onboarding wizard. One in-progress draft
// per user; each step stays nil until supplied.
type DistributorDraft struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	UserID     uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Company    *StepCompany    `gorm:"serializer:json;type:text" json:"company,omitempty"`
	Contacts   *StepContacts   `gorm:"serializer:json;type:text" json:"contacts,omitempty"`
	Operations *StepOperations `gorm:"serializer:json;type:text" json:"operations,omitempty"`
	Ordering   *StepOrdering   `gorm:"serializer:json;type:text" json:"ordering,omitempty"`
	Billing    *StepBilling    `gorm:"serializer:json;type:text" json:"billing,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (DistributorDraft) TableName() string {
	return "distributor_drafts"
}

// Complete reports whether all five steps are present
func (d *DistributorDraft) Complete() bool {
	return d.Company != nil && d.Contacts != nil && d.Operations != nil &&
		d.Ordering != nil && d.Billing != nil
}

// AttachedFile references an uploaded document on a profile
type AttachedFile struct {
	Name string `json:"name"`
	Size string `json:"size"`
	URL  string `json:"url,omitempty"`
}

// DistributorProfile is a finalized application, keyed by the primary
// contact's work email (lowercased). Status moves pending -> approved or
// pending -> rejected; both outcomes are terminal.
type DistributorProfile struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	Status          ProfileStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Company         StepCompany    `gorm:"serializer:json;type:text" json:"company"`
	Contacts        StepContacts   `gorm:"serializer:json;type:text" json:"contacts"`
	Operations      StepOperations `gorm:"serializer:json;type:text" json:"operations"`
	Ordering        StepOrdering   `gorm:"serializer:json;type:text" json:"ordering"`
	Billing         StepBilling    `gorm:"serializer:json;type:text" json:"billing"`
	AssignedPricing string         `gorm:"type:varchar(60)" json:"assigned_pricing"`
	OrderLimits     string         `gorm:"type:varchar(30)" json:"order_limits"`
	AttachedFiles   []AttachedFile `gorm:"serializer:json;type:text" json:"attached_files"`
	ReviewedByID    *uint          `json:"reviewed_by_id,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DistributorProfile) TableName() string {
	return "distributor_profiles"
}
