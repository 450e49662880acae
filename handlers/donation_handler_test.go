package handlers_test

import (
	"testing"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMonetaryDonationRequiresAmount(t *testing.T) {
	app, repos := newTestApp(t)
	_, token := seedUser(t, repos, "donor@example.com", models.RoleClient)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	resp := doRequest(t, app, fiber.MethodPost, "/api/donations", token, fiber.Map{
		"orphanageId":  orphanage.ID,
		"donationType": "monetary",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errorFields(decodeBody(t, resp)), "amount")
}

func TestCreateItemDonationRequiresDescription(t *testing.T) {
	app, repos := newTestApp(t)
	_, token := seedUser(t, repos, "donor@example.com", models.RoleClient)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	resp := doRequest(t, app, fiber.MethodPost, "/api/donations", token, fiber.Map{
		"orphanageId":  orphanage.ID,
		"donationType": "items",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errorFields(decodeBody(t, resp)), "itemDescription")
}

func TestCreateDonationRejectsUnknownType(t *testing.T) {
	app, repos := newTestApp(t)
	_, token := seedUser(t, repos, "donor@example.com", models.RoleClient)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	resp := doRequest(t, app, fiber.MethodPost, "/api/donations", token, fiber.Map{
		"orphanageId":  orphanage.ID,
		"donationType": "crypto",
		"amount":       10,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errorFields(decodeBody(t, resp)), "donationType")
}

func TestCreateMonetaryDonationNotifiesAdmins(t *testing.T) {
	app, repos := newTestApp(t)
	_, donorToken := seedUser(t, repos, "donor@example.com", models.RoleClient)
	admin, _ := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	resp := doRequest(t, app, fiber.MethodPost, "/api/donations", donorToken, fiber.Map{
		"orphanageId":  orphanage.ID,
		"donationType": "monetary",
		"amount":       250.0,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	donation, ok := dataField(t, body, "donation").(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, string(models.DonationPending), donation["status"])
	assert.NotEmpty(t, donation["paymentReference"])

	notifications, err := repos.Notifications.ListByUser(admin.ID, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifDonationReceived, notifications[0].Type)
}

func TestItemDonationHasNoPaymentReference(t *testing.T) {
	app, repos := newTestApp(t)
	_, donorToken := seedUser(t, repos, "donor@example.com", models.RoleClient)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	resp := doRequest(t, app, fiber.MethodPost, "/api/donations", donorToken, fiber.Map{
		"orphanageId":     orphanage.ID,
		"donationType":    "items",
		"itemDescription": "Blankets and school books",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	donation, ok := dataField(t, body, "donation").(map[string]interface{})
	require.True(t, ok)
	_, hasRef := donation["paymentReference"]
	assert.False(t, hasRef)
}

func TestDonationQRCode(t *testing.T) {
	app, repos := newTestApp(t)
	donor, donorToken := seedUser(t, repos, "donor@example.com", models.RoleClient)
	_, otherToken := seedUser(t, repos, "other@example.com", models.RoleClient)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	monetary := &models.Donation{
		DonorID:          donor.ID,
		OrphanageID:      orphanage.ID,
		DonationType:     models.DonationMonetary,
		Amount:           50,
		PaymentReference: "ref-123",
	}
	require.NoError(t, repos.Donations.Create(monetary))
	items := &models.Donation{
		DonorID:      donor.ID,
		OrphanageID:  orphanage.ID,
		DonationType: models.DonationItems,
		ItemDesc:     "Clothes",
	}
	require.NoError(t, repos.Donations.Create(items))

	resp := doRequest(t, app, fiber.MethodGet, "/api/donations/"+monetary.ID+"/qrcode", donorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

	resp = doRequest(t, app, fiber.MethodGet, "/api/donations/"+items.ID+"/qrcode", donorToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/donations/"+monetary.ID+"/qrcode", otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdateDonationStatusNotifiesDonor(t *testing.T) {
	app, repos := newTestApp(t)
	donor, _ := seedUser(t, repos, "donor@example.com", models.RoleClient)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	donation := &models.Donation{
		DonorID:      donor.ID,
		OrphanageID:  orphanage.ID,
		DonationType: models.DonationMonetary,
		Amount:       100,
	}
	require.NoError(t, repos.Donations.Create(donation))

	resp := doRequest(t, app, fiber.MethodPut, "/api/admin/donations/"+donation.ID+"/status", adminToken, fiber.Map{
		"status":  "approved",
		"message": "Thank you for your generosity",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated, err := repos.Donations.FindByID(donation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DonationApproved, updated.Status)
	assert.Equal(t, "Thank you for your generosity", updated.AdminMessage)

	notifications, err := repos.Notifications.ListByUser(donor.ID, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifDonationStatus, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Hope Home")
	assert.Contains(t, notifications[0].Message, "approved")
}

func TestUpdateDonationStatusValidation(t *testing.T) {
	app, repos := newTestApp(t)
	donor, _ := seedUser(t, repos, "donor@example.com", models.RoleClient)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	_, clientToken := seedUser(t, repos, "client@example.com", models.RoleClient)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	donation := &models.Donation{
		DonorID:      donor.ID,
		OrphanageID:  orphanage.ID,
		DonationType: models.DonationMonetary,
		Amount:       100,
	}
	require.NoError(t, repos.Donations.Create(donation))

	resp := doRequest(t, app, fiber.MethodPut, "/api/admin/donations/"+donation.ID+"/status", adminToken, fiber.Map{
		"status": "pending",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPut, "/api/admin/donations/"+donation.ID+"/status", clientToken, fiber.Map{
		"status": "approved",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetMyDonations(t *testing.T) {
	app, repos := newTestApp(t)
	donor, donorToken := seedUser(t, repos, "donor@example.com", models.RoleClient)
	other, _ := seedUser(t, repos, "other@example.com", models.RoleClient)
	orphanage := seedOrphanage(t, repos, "Hope Home", true)

	require.NoError(t, repos.Donations.Create(&models.Donation{
		DonorID: donor.ID, OrphanageID: orphanage.ID, DonationType: models.DonationMonetary, Amount: 10,
	}))
	require.NoError(t, repos.Donations.Create(&models.Donation{
		DonorID: other.ID, OrphanageID: orphanage.ID, DonationType: models.DonationMonetary, Amount: 20,
	}))

	resp := doRequest(t, app, fiber.MethodGet, "/api/user/donations", donorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	donations, ok := dataField(t, body, "donations").([]interface{})
	require.True(t, ok)
	assert.Len(t, donations, 1)
}
