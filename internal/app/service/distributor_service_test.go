package service

import (
	"testing"

	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDistributorServiceTest(t *testing.T) DistributorService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewDistributorService(repository.NewDistributorRepository(testDB), nil)
}

func stepCompany() *model.StepCompany {
	return &model.StepCompany{
		LegalName:         "Horizon Wholesale LLC",
		TradingName:       "Horizon Wholesale",
		CompanyRegNo:      "REG-1000482",
		TaxID:             "52-1180934",
		YearEstablished:   "2019",
		Country:           "US",
		Phone:             "+1 (512) 555-0142",
		RegisteredAddress: "700 Commerce St, Austin, TX 78701",
		ShippingAddress:   "700 Commerce St, Austin, TX 78701",
		SameAsRegistered:  true,
	}
}

func stepContacts() *model.StepContacts {
	return &model.StepContacts{
		FirstName:    "Dana",
		LastName:     "Whitfield",
		JobTitle:     "Procurement Lead",
		WorkEmail:    "Dana@HorizonWholesale.com",
		PhoneCountry: "US",
		PhoneNumber:  "(512) 555-0142",
	}
}

func completeDraft(t *testing.T, svc DistributorService, userID uint) {
	steps := []struct {
		step int
		data StepData
	}{
		{1, StepData{Company: stepCompany()}},
		{2, StepData{Contacts: stepContacts()}},
		{3, StepData{Operations: &model.StepOperations{
			DistributorType: "Regional, Wholesale",
			Industries:      []string{"CPG", "Beverage"},
			Countries:       []string{"US"},
			Locations:       "2-5",
		}}},
		{4, StepData{Ordering: &model.StepOrdering{
			OrderFrequency: "Monthly",
			OrderSize:      "$5k-$25k",
		}}},
		{5, StepData{Billing: &model.StepBilling{
			PaymentMethod: "Invoice (Net terms)",
			CreditTerms:   "Net 30",
			Authorized:    true,
			TermsAgreed:   true,
		}}},
	}
	for _, s := range steps {
		_, err := svc.SaveDraftStep(userID, s.step, s.data)
		require.NoError(t, err)
	}
}

func TestDistributorService_GetDraft_EmptyWhenNoneSaved(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	draft, err := svc.GetDraft(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), draft.UserID)
	assert.Nil(t, draft.Company)
	assert.False(t, draft.Complete())
}

func TestDistributorService_SaveDraftStep(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	draft, err := svc.SaveDraftStep(1, 1, StepData{Company: stepCompany()})
	require.NoError(t, err)
	require.NotNil(t, draft.Company)
	assert.Equal(t, "Horizon Wholesale LLC", draft.Company.LegalName)

	// other steps stay untouched
	draft, err = svc.SaveDraftStep(1, 2, StepData{Contacts: stepContacts()})
	require.NoError(t, err)
	assert.NotNil(t, draft.Company)
	assert.NotNil(t, draft.Contacts)

	// resaving a step replaces it wholesale
	company := stepCompany()
	company.LegalName = "Horizon Wholesale Group LLC"
	draft, err = svc.SaveDraftStep(1, 1, StepData{Company: company})
	require.NoError(t, err)
	assert.Equal(t, "Horizon Wholesale Group LLC", draft.Company.LegalName)

	// the saved draft survives a reload
	reloaded, err := svc.GetDraft(1)
	require.NoError(t, err)
	assert.Equal(t, "Horizon Wholesale Group LLC", reloaded.Company.LegalName)
}

func TestDistributorService_SaveDraftStep_InvalidStep(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	for _, step := range []int{0, 6, -1, 100} {
		_, err := svc.SaveDraftStep(1, step, StepData{})
		assert.ErrorIs(t, err, ErrInvalidStep, "step %d", step)
	}
}

func TestDistributorService_Finalize(t *testing.T) {
	svc := setupDistributorServiceTest(t)
	completeDraft(t, svc, 3)

	profile, err := svc.Finalize(3)
	require.NoError(t, err)

	assert.Equal(t, "dana@horizonwholesale.com", profile.Email)
	assert.Equal(t, model.ProfileStatusPending, profile.Status)
	assert.Equal(t, "-50% on all order", profile.AssignedPricing)
	assert.Equal(t, "20/30", profile.OrderLimits)
	assert.Equal(t, "Horizon Wholesale LLC", profile.Company.LegalName)

	// the draft is gone afterwards
	draft, err := svc.GetDraft(3)
	require.NoError(t, err)
	assert.False(t, draft.Complete())

	// and the profile is retrievable by any casing of the email
	found, err := svc.GetProfile("  DANA@HorizonWholesale.COM ")
	require.NoError(t, err)
	assert.Equal(t, profile.Email, found.Email)
}

func TestDistributorService_Finalize_NoDraft(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	_, err := svc.Finalize(42)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDistributorService_Finalize_IncompleteDraft(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	_, err := svc.SaveDraftStep(5, 1, StepData{Company: stepCompany()})
	require.NoError(t, err)

	_, err = svc.Finalize(5)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
}

func TestDistributorService_Finalize_DuplicateEmail(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	completeDraft(t, svc, 1)
	_, err := svc.Finalize(1)
	require.NoError(t, err)

	// a second applicant using the same work email is refused
	completeDraft(t, svc, 2)
	_, err = svc.Finalize(2)
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestDistributorService_Review(t *testing.T) {
	svc := setupDistributorServiceTest(t)
	completeDraft(t, svc, 1)
	_, err := svc.Finalize(1)
	require.NoError(t, err)

	profile, err := svc.Review(9, "dana@horizonwholesale.com", model.ProfileStatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, model.ProfileStatusApproved, profile.Status)
	require.NotNil(t, profile.ReviewedByID)
	assert.Equal(t, uint(9), *profile.ReviewedByID)
	assert.NotNil(t, profile.ReviewedAt)

	// approval is terminal
	_, err = svc.Review(9, "dana@horizonwholesale.com", model.ProfileStatusRejected, "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestDistributorService_Review_Rejection(t *testing.T) {
	svc := setupDistributorServiceTest(t)
	completeDraft(t, svc, 1)
	_, err := svc.Finalize(1)
	require.NoError(t, err)

	profile, err := svc.Review(9, "dana@horizonwholesale.com", model.ProfileStatusRejected, "Incomplete tax documentation")
	require.NoError(t, err)
	assert.Equal(t, model.ProfileStatusRejected, profile.Status)
	assert.Equal(t, "Incomplete tax documentation", profile.RejectionReason)
}

func TestDistributorService_Review_InvalidStatus(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	_, err := svc.Review(9, "dana@horizonwholesale.com", model.ProfileStatusPending, "")
	assert.ErrorIs(t, err, ErrInvalidReviewStatus)
}

func TestDistributorService_Review_UnknownProfile(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	_, err := svc.Review(9, "nobody@example.com", model.ProfileStatusApproved, "")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDistributorService_ListProfiles(t *testing.T) {
	svc := setupDistributorServiceTest(t)
	completeDraft(t, svc, 1)
	_, err := svc.Finalize(1)
	require.NoError(t, err)

	all, err := svc.ListProfiles("")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	pending, err := svc.ListProfiles(model.ProfileStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	approved, err := svc.ListProfiles(model.ProfileStatusApproved)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestDistributorService_AttachFile(t *testing.T) {
	svc := setupDistributorServiceTest(t)
	completeDraft(t, svc, 1)
	_, err := svc.Finalize(1)
	require.NoError(t, err)

	profile, err := svc.AttachFile("dana@horizonwholesale.com", model.AttachedFile{
		Name: "reseller-certificate.pdf",
		URL:  "https://cdn.example.com/docs/reseller-certificate.pdf",
	})
	require.NoError(t, err)
	require.Len(t, profile.AttachedFiles, 1)
	assert.Equal(t, "reseller-certificate.pdf", profile.AttachedFiles[0].Name)
}

func TestDistributorService_SetProfile_PreservesIdentity(t *testing.T) {
	svc := setupDistributorServiceTest(t)
	completeDraft(t, svc, 1)
	created, err := svc.Finalize(1)
	require.NoError(t, err)

	replacement := &model.DistributorProfile{
		Status:   model.ProfileStatusApproved,
		Company:  created.Company,
		Contacts: created.Contacts,
	}
	require.NoError(t, svc.SetProfile(created.Email, replacement))

	stored, err := svc.GetProfile(created.Email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, model.ProfileStatusApproved, stored.Status)
}

func TestDistributorService_ProfileFromListing(t *testing.T) {
	svc := setupDistributorServiceTest(t)

	profile := svc.ProfileFromListing(ProfileListing{
		Name:         "Robert James Miller",
		BusinessName: "Miller Goods Co",
		Email:        "Robert@MillerGoods.com",
		Phone:        "(212) 555-0100",
		Status:       "active",
	})

	assert.Equal(t, model.ProfileStatusApproved, profile.Status)
	assert.Equal(t, "robert@millergoods.com", profile.Email)
	assert.Equal(t, "Robert", profile.Contacts.FirstName)
	assert.Equal(t, "James Miller", profile.Contacts.LastName)
	assert.Equal(t, "Miller Goods Co", profile.Company.LegalName)
	assert.Equal(t, "(212) 555-0100", profile.Contacts.PhoneNumber)

	// non-active listings fall back to pending
	pending := svc.ProfileFromListing(ProfileListing{Name: "Ana", Email: "ana@x.com", Status: "pending"})
	assert.Equal(t, model.ProfileStatusPending, pending.Status)
	assert.Equal(t, "Ana", pending.Contacts.FirstName)
	assert.Equal(t, "Ana", pending.Contacts.LastName)
}
