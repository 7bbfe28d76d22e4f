package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalease/internal/domain"
)

var pdfDocument = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

func caseDTO(profileID, slotID string) domain.CreateCaseDTO {
	return domain.CreateCaseDTO{
		Title:           "Land dispute",
		Description:     "Boundary disagreement with neighbour",
		CaseType:        "civil",
		LawyerProfileID: profileID,
		SlotID:          slotID,
	}
}

func TestCreateCaseBooksSlot(t *testing.T) {
	env := newTestEnv(t).withParties(t)
	ctx := context.Background()
	slot := env.propose(t, env.lawyerID, "2024-06-01", "09:00", "10:00")

	dto := caseDTO(env.profileID, slot.ID)
	dto.CaseFile = "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdfDocument)
	dto.CaseFileName = "brief.pdf"

	c, err := env.services.Case.Create(ctx, env.clientID, dto, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, env.clientID, c.ClientID)
	assert.Equal(t, env.profileID, c.LawyerProfileID)
	assert.Equal(t, domain.CaseStatusOpen, c.Status)
	assert.True(t, c.HasDocument)
	assert.True(t, strings.HasPrefix(c.CaseFileKey, "cases/"))
	require.NotNil(t, c.AppointmentTime)
	assert.Equal(t, domain.SlotStatusBooked, c.AppointmentTime.Status)

	stored, err := env.repos.Slot.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStatusBooked, stored.Status)

	data, err := env.storage.Get(ctx, c.CaseFileKey)
	require.NoError(t, err)
	assert.Equal(t, pdfDocument, data)

	assert.Contains(t, env.recorder.Types(), domain.EventCaseCreated)

	_, err = env.services.Case.Create(ctx, env.clientID, caseDTO(env.profileID, slot.ID), nil)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, domain.MsgSlotTaken, err.Error())
}

func TestCreateCaseRejections(t *testing.T) {
	env := newTestEnv(t).withParties(t)
	ctx := context.Background()
	slot := env.propose(t, env.lawyerID, "2024-06-01", "09:00", "10:00")
	foreign := env.propose(t, "another-lawyer", "2024-06-01", "09:00", "10:00")

	_, err := env.services.Case.Create(ctx, env.clientID, caseDTO("missing", slot.ID), nil)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = env.services.Case.Create(ctx, env.clientID, caseDTO(env.profileID, "missing"), nil)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, msgInvalidAppointment, err.Error())

	_, err = env.services.Case.Create(ctx, env.clientID, caseDTO(env.profileID, foreign.ID), nil)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, msgForeignAppointment, err.Error())

	bad := caseDTO(env.profileID, slot.ID)
	bad.CaseFile = "%%% not base64"
	_, err = env.services.Case.Create(ctx, env.clientID, bad, nil)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	unsupported := caseDTO(env.profileID, slot.ID)
	_, err = env.services.Case.Create(ctx, env.clientID, unsupported, &domain.CaseDocument{
		Data:     []byte("PK\x03\x04 zip archive"),
		Filename: "archive.zip",
	})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	// Failed attempts leave the slot bookable.
	stored, err := env.repos.Slot.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStatusActive, stored.Status)
}

func TestCaseListingsAndStats(t *testing.T) {
	env := newTestEnv(t).withParties(t)
	ctx := context.Background()

	first := env.propose(t, env.lawyerID, "2024-06-01", "09:00", "10:00")
	second := env.propose(t, env.lawyerID, "2024-06-01", "10:00", "11:00")

	_, err := env.services.Case.Create(ctx, env.clientID, caseDTO(env.profileID, first.ID), nil)
	require.NoError(t, err)
	_, err = env.services.Case.Create(ctx, env.clientID, caseDTO(env.profileID, second.ID), nil)
	require.NoError(t, err)

	clientCases, err := env.services.Case.ListForClient(ctx, env.clientID)
	require.NoError(t, err)
	require.Len(t, clientCases, 2)
	for _, c := range clientCases {
		require.NotNil(t, c.AppointmentTime)
		require.NotNil(t, c.Lawyer)
		assert.Equal(t, env.profileID, c.Lawyer.ID)
	}

	lawyerCases, err := env.services.Case.ListForLawyer(ctx, env.lawyerID)
	require.NoError(t, err)
	require.Len(t, lawyerCases, 2)
	require.NotNil(t, lawyerCases[0].Client)
	assert.Equal(t, env.clientID, lawyerCases[0].Client.ID)

	stats, err := env.services.Case.StatsForLawyer(ctx, env.lawyerID)
	require.NoError(t, err)
	assert.Equal(t, domain.LawyerStats{Cases: 2, Clients: 1}, stats)

	none, err := env.services.Case.ListForLawyer(ctx, "lawyer-without-profile")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestCaseDocumentURL(t *testing.T) {
	env := newTestEnv(t).withParties(t)
	ctx := context.Background()
	slot := env.propose(t, env.lawyerID, "2024-06-01", "09:00", "10:00")
	plain := env.propose(t, env.lawyerID, "2024-06-02", "09:00", "10:00")

	withDoc, err := env.services.Case.Create(ctx, env.clientID, caseDTO(env.profileID, slot.ID), &domain.CaseDocument{
		Data:     pdfDocument,
		Filename: "brief.pdf",
	})
	require.NoError(t, err)

	withoutDoc, err := env.services.Case.Create(ctx, env.clientID, caseDTO(env.profileID, plain.ID), nil)
	require.NoError(t, err)

	client := domain.Principal{UserID: env.clientID, Role: domain.UserRoleClient}
	lawyer := domain.Principal{UserID: env.lawyerID, Role: domain.UserRoleLawyer}
	stranger := domain.Principal{UserID: "someone", Role: domain.UserRoleClient}

	url, err := env.services.Case.DocumentURL(ctx, client, withDoc.ID)
	require.NoError(t, err)
	assert.Contains(t, url, withDoc.CaseFileKey)
	assert.Contains(t, url, "expires=900")

	_, err = env.services.Case.DocumentURL(ctx, lawyer, withDoc.ID)
	assert.NoError(t, err)

	_, err = env.services.Case.DocumentURL(ctx, stranger, withDoc.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = env.services.Case.DocumentURL(ctx, client, withoutDoc.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = env.services.Case.DocumentURL(ctx, client, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDecodeCaseFile(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("hello"))

	data, err := decodeCaseFile(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	data, err = decodeCaseFile("data:text/plain;base64," + raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = decodeCaseFile("data:text/plain;base64")
	assert.Error(t, err)

	_, err = decodeCaseFile("")
	assert.Error(t, err)
}
