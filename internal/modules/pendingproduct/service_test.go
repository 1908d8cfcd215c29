package pendingproduct

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"designhub/internal/database"
	"designhub/internal/domain"
	"designhub/internal/repository"
)

type fixture struct {
	db       *gorm.DB
	service  *Service
	designer *domain.User
	client   *domain.User
	project  *domain.Project
	room     *domain.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Firm{},
		&domain.FirmClient{},
		&domain.Project{},
		&domain.ProjectClient{},
		&domain.ProjectDesigner{},
		&domain.Room{},
		&domain.Product{},
		&domain.PendingProduct{},
		&domain.PendingProductOption{},
		&domain.Comment{},
	))

	designer := &domain.User{Name: "Dana", Email: "dana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(designer).Error)
	firm := &domain.Firm{Name: "Studio", OwnerID: designer.ID}
	require.NoError(t, db.Create(firm).Error)
	require.NoError(t, db.Model(designer).Update("firm_id", firm.ID).Error)
	designer.FirmID = &firm.ID

	client := &domain.User{Name: "Casey", Email: "casey@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(client).Error)

	project := &domain.Project{FirmID: firm.ID, Name: "Loft", Status: domain.ProjectNew}
	require.NoError(t, db.Create(project).Error)
	require.NoError(t, db.Create(&domain.ProjectDesigner{ProjectID: project.ID, DesignerID: designer.ID}).Error)
	require.NoError(t, db.Create(&domain.ProjectClient{ProjectID: project.ID, ClientID: client.ID}).Error)

	room := &domain.Room{ProjectID: project.ID, Name: "Kitchen", Status: domain.RoomNew}
	require.NoError(t, db.Create(room).Error)

	return &fixture{
		db: db,
		service: NewService(
			repository.NewProjectRepository(db),
			repository.NewRoomRepository(db),
			repository.NewPendingProductRepository(db),
		),
		designer: designer,
		client:   client,
		project:  project,
		room:     room,
	}
}

func (f *fixture) createFaucet(t *testing.T) *domain.PendingProduct {
	t.Helper()
	one := 1
	p100 := 100.0
	p200 := 200.0
	pp := &domain.PendingProduct{
		RoomID:   f.room.ID,
		Name:     "Faucet",
		Quantity: &one,
		Options: []domain.PendingProductOption{
			{Name: "Brushed steel", Price: &p100},
			{Name: "Matte black", Price: &p200},
		},
	}
	require.NoError(t, f.db.Create(pp).Error)
	return pp
}

func TestCreate_ExistingRoomByName(t *testing.T) {
	f := newFixture(t)

	pp, err := f.service.Create(context.Background(), f.designer, f.project.ID, CreateRequest{
		RoomName: "Kitchen",
		Name:     "Faucet",
		Options:  []OptionInput{{Name: "Brushed steel"}},
	})
	require.NoError(t, err)
	assert.Equal(t, f.room.ID, pp.RoomID)
	assert.Len(t, pp.Options, 1)
	assert.NotZero(t, pp.Options[0].ID)
}

func TestCreate_LazyRoomCreation(t *testing.T) {
	f := newFixture(t)

	pp, err := f.service.Create(context.Background(), f.designer, f.project.ID, CreateRequest{
		RoomName: "Hallway",
		Name:     "Runner rug",
		Options:  []OptionInput{{Name: "Wool"}},
	})
	require.NoError(t, err)

	var room domain.Room
	require.NoError(t, f.db.First(&room, pp.RoomID).Error)
	assert.Equal(t, "Hallway", room.Name)
	assert.Equal(t, f.project.ID, room.ProjectID)
}

func TestCreate_BlankRoomNameFallsBack(t *testing.T) {
	f := newFixture(t)

	pp, err := f.service.Create(context.Background(), f.designer, f.project.ID, CreateRequest{
		Name:    "Pendant light",
		Options: []OptionInput{{Name: "Brass"}},
	})
	require.NoError(t, err)

	var room domain.Room
	require.NoError(t, f.db.First(&room, pp.RoomID).Error)
	assert.Equal(t, "Default", room.Name)
}

func TestCreate_BlankOptionNameRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), f.designer, f.project.ID, CreateRequest{
		RoomName: "Kitchen",
		Name:     "Faucet",
		Options:  []OptionInput{{Name: "Brushed steel"}, {Name: "   "}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, f.db.Model(&domain.PendingProduct{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_ClientForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), f.client, f.project.ID, CreateRequest{
		Name:    "Faucet",
		Options: []OptionInput{{Name: "Steel"}},
	})
	assert.ErrorIs(t, err, ErrNotDesigner)
}

func TestSelectOption_ConvertsAndCleansUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pp := f.createFaucet(t)
	chosen := pp.Options[1]

	require.NoError(t, f.db.Create(&domain.Comment{
		CommentableType: domain.CommentablePendingProduct,
		CommentableID:   pp.ID,
		UserID:          f.client.ID,
		Comment:         "The black one, please",
	}).Error)

	product, err := f.service.SelectOption(ctx, f.client, f.project.ID, pp.ID, chosen.ID)
	require.NoError(t, err)

	assert.Equal(t, "Faucet - Matte black", product.Name)
	assert.Equal(t, pp.RoomID, product.RoomID)
	require.NotNil(t, product.Price)
	assert.Equal(t, 200.0, *product.Price)
	require.NotNil(t, product.Quantity)
	assert.Equal(t, 1, *product.Quantity)
	assert.Equal(t, domain.ProductPending, product.Status)

	var ppCount, optCount, commentCount int64
	require.NoError(t, f.db.Model(&domain.PendingProduct{}).Count(&ppCount).Error)
	require.NoError(t, f.db.Model(&domain.PendingProductOption{}).Count(&optCount).Error)
	require.NoError(t, f.db.Model(&domain.Comment{}).
		Where("commentable_type = ? AND commentable_id = ?", domain.CommentablePendingProduct, pp.ID).
		Count(&commentCount).Error)
	assert.Zero(t, ppCount)
	assert.Zero(t, optCount)
	assert.Zero(t, commentCount)
}

func TestSelectOption_QuantityDefaultsToOne(t *testing.T) {
	f := newFixture(t)
	pp := &domain.PendingProduct{
		RoomID:  f.room.ID,
		Name:    "Stool",
		Options: []domain.PendingProductOption{{Name: "Oak"}},
	}
	require.NoError(t, f.db.Create(pp).Error)

	product, err := f.service.SelectOption(context.Background(), f.designer, f.project.ID, pp.ID, pp.Options[0].ID)
	require.NoError(t, err)
	require.NotNil(t, product.Quantity)
	assert.Equal(t, 1, *product.Quantity)
}

func TestSelectOption_WrongOptionLeavesEverything(t *testing.T) {
	f := newFixture(t)
	pp := f.createFaucet(t)

	other := f.createOtherPending(t)

	_, err := f.service.SelectOption(context.Background(), f.designer, f.project.ID, pp.ID, other.Options[0].ID)
	assert.ErrorIs(t, err, ErrOptionNotFound)

	var ppCount, productCount int64
	require.NoError(t, f.db.Model(&domain.PendingProduct{}).Count(&ppCount).Error)
	require.NoError(t, f.db.Model(&domain.Product{}).Count(&productCount).Error)
	assert.Equal(t, int64(2), ppCount)
	assert.Zero(t, productCount)
}

func (f *fixture) createOtherPending(t *testing.T) *domain.PendingProduct {
	t.Helper()
	pp := &domain.PendingProduct{
		RoomID:  f.room.ID,
		Name:    "Mirror",
		Options: []domain.PendingProductOption{{Name: "Round"}},
	}
	require.NoError(t, f.db.Create(pp).Error)
	return pp
}

func TestSelectOption_OutsideProjectNotFound(t *testing.T) {
	f := newFixture(t)
	pp := f.createFaucet(t)

	outsider := &domain.User{Name: "Olive", Email: "olive@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.Create(outsider).Error)

	_, err := f.service.SelectOption(context.Background(), outsider, f.project.ID, pp.ID, pp.Options[0].ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
