package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/model"
	apperrors "github.com/medicore/hms-api/pkg/errors"
)

func testDoctor(name string) *model.Doctor {
	return &model.Doctor{
		Name:           name,
		Specialization: "Cardiology",
		Contact:        "044-2234567",
		Email:          "dr@example.com",
	}
}

func TestDoctorRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, testDoctor("Meera Iyer"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Meera Iyer", got.Name)
	assert.Equal(t, "Cardiology", got.Specialization)
	assert.Equal(t, "dr@example.com", got.Email)
}

func TestDoctorListRefs(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Meera Iyer", "Vikram Shah"} {
		_, err := repo.Create(ctx, testDoctor(name))
		require.NoError(t, err)
	}

	refs, err := repo.ListRefs(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Meera Iyer", refs[0].Name)
	assert.NotZero(t, refs[0].ID)
}

func TestDoctorResolveByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, testDoctor("Meera Iyer"))
	require.NoError(t, err)

	got, err := repo.Resolve(ctx, "MEERA IYER")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestDoctorDeleteMissingRowIsSilent(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)

	assert.NoError(t, repo.Delete(context.Background(), 12345))
}

func TestDoctorUpdateMissingRowIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)

	d := testDoctor("Ghost")
	d.ID = 12345
	err := repo.Update(context.Background(), d)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}
