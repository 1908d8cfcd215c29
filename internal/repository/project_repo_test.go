package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"designhub/internal/database"
	"designhub/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
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
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, firmID *int64) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, Email: email, PasswordHash: "x", FirmID: firmID}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createFirm(t *testing.T, db *gorm.DB, ownerID int64) *domain.Firm {
	t.Helper()
	f := &domain.Firm{Name: "Studio", OwnerID: ownerID}
	require.NoError(t, db.Create(f).Error)
	return f
}

func TestAccessibleScope(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	owner := createUser(t, db, "Owner", "owner@example.com", nil)
	firm := createFirm(t, db, owner.ID)
	designer := createUser(t, db, "Designer", "designer@example.com", &firm.ID)
	client := createUser(t, db, "Client", "client@example.com", nil)
	outsider := createUser(t, db, "Outsider", "outsider@example.com", nil)

	firmProject := &domain.Project{FirmID: firm.ID, Name: "Loft", Status: domain.ProjectNew}
	require.NoError(t, db.Create(firmProject).Error)

	otherFirm := createFirm(t, db, outsider.ID)
	require.NoError(t, db.Model(outsider).Update("firm_id", otherFirm.ID).Error)
	outsider.FirmID = &otherFirm.ID
	foreignProject := &domain.Project{FirmID: otherFirm.ID, Name: "Villa", Status: domain.ProjectNew}
	require.NoError(t, db.Create(foreignProject).Error)

	membership := &domain.ProjectClient{ProjectID: firmProject.ID, ClientID: client.ID}
	require.NoError(t, db.Create(membership).Error)

	// Designer sees firm projects.
	projects, err := repo.ListAccessible(ctx, designer, ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, firmProject.ID, projects[0].ID)

	// Client sees projects they are explicitly joined to.
	projects, err = repo.ListAccessible(ctx, client, ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, firmProject.ID, projects[0].ID)

	// Outsider with their own firm sees only that firm's projects.
	projects, err = repo.ListAccessible(ctx, outsider, ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, foreignProject.ID, projects[0].ID)

	// Existing but inaccessible resolves as record-not-found.
	_, err = repo.FindAccessible(ctx, client, foreignProject.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Dropping the membership row removes access on the next call.
	require.NoError(t, db.Delete(membership).Error)
	projects, err = repo.ListAccessible(ctx, client, ProjectFilter{})
	require.NoError(t, err)
	require.Empty(t, projects)
	_, err = repo.FindAccessible(ctx, client, firmProject.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListAccessibleMemberFilters(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	owner := createUser(t, db, "Owner", "owner@example.com", nil)
	firm := createFirm(t, db, owner.ID)
	designer := createUser(t, db, "Designer", "designer@example.com", &firm.ID)
	clientA := createUser(t, db, "Client A", "a@example.com", nil)
	clientB := createUser(t, db, "Client B", "b@example.com", nil)

	loft := &domain.Project{FirmID: firm.ID, Name: "Loft", Status: domain.ProjectNew}
	require.NoError(t, db.Create(loft).Error)
	villa := &domain.Project{FirmID: firm.ID, Name: "Villa", Status: domain.ProjectNew}
	require.NoError(t, db.Create(villa).Error)

	require.NoError(t, db.Create(&domain.ProjectDesigner{ProjectID: loft.ID, DesignerID: designer.ID}).Error)
	require.NoError(t, db.Create(&domain.ProjectClient{ProjectID: loft.ID, ClientID: clientA.ID}).Error)
	require.NoError(t, db.Create(&domain.ProjectClient{ProjectID: loft.ID, ClientID: clientB.ID}).Error)

	projects, err := repo.ListAccessible(ctx, designer, ProjectFilter{DesignerIDs: []int64{designer.ID}})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, loft.ID, projects[0].ID)

	// Both filter IDs hit membership rows of the same project; it must
	// still come back exactly once.
	projects, err = repo.ListAccessible(ctx, designer, ProjectFilter{ClientIDs: []int64{clientA.ID, clientB.ID}})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, loft.ID, projects[0].ID)

	// Combined member filters intersect.
	projects, err = repo.ListAccessible(ctx, designer, ProjectFilter{
		DesignerIDs: []int64{designer.ID},
		ClientIDs:   []int64{clientA.ID},
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)

	projects, err = repo.ListAccessible(ctx, designer, ProjectFilter{DesignerIDs: []int64{clientA.ID}})
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestRolePredicatesUseExplicitAssignment(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	owner := createUser(t, db, "Owner", "owner@example.com", nil)
	firm := createFirm(t, db, owner.ID)
	assigned := createUser(t, db, "Assigned", "assigned@example.com", &firm.ID)
	unassigned := createUser(t, db, "Unassigned", "unassigned@example.com", &firm.ID)

	p := &domain.Project{FirmID: firm.ID, Name: "Loft", Status: domain.ProjectNew}
	require.NoError(t, db.Create(p).Error)
	require.NoError(t, db.Create(&domain.ProjectDesigner{ProjectID: p.ID, DesignerID: assigned.ID}).Error)

	ok, err := repo.IsDesignerFor(ctx, assigned.ID, p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// Firm membership alone is not enough.
	ok, err = repo.IsDesignerFor(ctx, unassigned.ID, p.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCreateWithMembersRollsBack(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	owner := createUser(t, db, "Owner", "owner@example.com", nil)
	firm := createFirm(t, db, owner.ID)
	client := createUser(t, db, "Client", "client@example.com", nil)

	p := &domain.Project{FirmID: firm.ID, Name: "Loft", Status: domain.ProjectNew}
	// The duplicated client ID trips the join-row uniqueness constraint
	// partway through; nothing may survive.
	err := repo.CreateWithMembers(ctx, p, []int64{client.ID, client.ID}, nil)
	require.Error(t, err)
	require.True(t, IsUniqueViolation(err))

	var projectCount, joinCount int64
	require.NoError(t, db.Model(&domain.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&domain.ProjectClient{}).Count(&joinCount).Error)
	require.Zero(t, projectCount)
	require.Zero(t, joinCount)
}

func TestRoomNameUniquePerProject(t *testing.T) {
	db := setupDB(t)

	owner := createUser(t, db, "Owner", "owner@example.com", nil)
	firm := createFirm(t, db, owner.ID)
	p := &domain.Project{FirmID: firm.ID, Name: "Loft", Status: domain.ProjectNew}
	require.NoError(t, db.Create(p).Error)

	require.NoError(t, db.Create(&domain.Room{ProjectID: p.ID, Name: "Living room", Status: domain.RoomNew}).Error)
	err := db.Create(&domain.Room{ProjectID: p.ID, Name: "Living room", Status: domain.RoomNew}).Error
	require.Error(t, err)
	require.True(t, IsUniqueViolation(err))

	// Same name in another project is fine.
	p2 := &domain.Project{FirmID: firm.ID, Name: "Villa", Status: domain.ProjectNew}
	require.NoError(t, db.Create(p2).Error)
	require.NoError(t, db.Create(&domain.Room{ProjectID: p2.ID, Name: "Living room", Status: domain.RoomNew}).Error)
}
