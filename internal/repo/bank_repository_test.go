package repo

import (
	"LinkBank/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// хелперы для базовых сущностей
func mkBank(id string, userID int64, created time.Time) model.Bank {
	return model.Bank{ID: id, UserID: userID, Name: "bank-" + id, Icon: "🔗", Color: "#6366f1", CreatedAt: created.UTC()}
}

func mkCategory(id, bankID string, userID int64, slug string, order int64) model.Category {
	return model.Category{ID: id, BankID: bankID, UserID: userID, Name: "cat-" + id, Slug: slug, IsPublic: true, Order: order}
}

func mkLink(id, categoryID string, userID int64, order int64) model.Link {
	return model.Link{ID: id, CategoryID: categoryID, UserID: userID, Title: "link-" + id, URL: "https://example.com/" + id, Order: order, IsActive: true}
}

func TestBankRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewBankRepository(db)
	ctx := context.Background()

	b := mkBank("b1", 1, time.Now())
	assert.NoError(t, r.Create(ctx, &b))

	got, err := r.GetByID(ctx, "b1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)

	// несуществующий id
	got, err = r.GetByID(ctx, "missing")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestBankRepository_ListByUser_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := NewBankRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	old := mkBank("old", 7, now.Add(-2*time.Hour))
	mid := mkBank("mid", 7, now.Add(-time.Hour))
	fresh := mkBank("new", 7, now)
	other := mkBank("x", 99, now) // другой пользователь
	for _, b := range []model.Bank{old, mid, fresh, other} {
		bank := b
		assert.NoError(t, r.Create(ctx, &bank))
	}

	banks, err := r.ListByUser(ctx, 7)
	assert.NoError(t, err)
	if assert.Len(t, banks, 3) {
		assert.Equal(t, "new", banks[0].ID)
		assert.Equal(t, "mid", banks[1].ID)
		assert.Equal(t, "old", banks[2].ID)
	}
}

func TestBankRepository_GetByID_CategoriesSortedByOrder(t *testing.T) {
	db := newTestDB(t)
	r := NewBankRepository(db)
	ctx := context.Background()

	b := mkBank("b1", 1, time.Now())
	assert.NoError(t, r.Create(ctx, &b))

	// создаём категории в перемешанном порядке
	for _, c := range []model.Category{
		mkCategory("c2", "b1", 1, "slug-c2", 2),
		mkCategory("c0", "b1", 1, "slug-c0", 0),
		mkCategory("c1", "b1", 1, "slug-c1", 1),
	} {
		cat := c
		assert.NoError(t, db.Create(&cat).Error)
	}

	got, err := r.GetByID(ctx, "b1")
	assert.NoError(t, err)
	if assert.Len(t, got.Categories, 3) {
		assert.Equal(t, "c0", got.Categories[0].ID)
		assert.Equal(t, "c1", got.Categories[1].ID)
		assert.Equal(t, "c2", got.Categories[2].ID)
	}
}

func TestBankRepository_Update(t *testing.T) {
	db := newTestDB(t)
	r := NewBankRepository(db)
	ctx := context.Background()

	b := mkBank("b1", 1, time.Now())
	assert.NoError(t, r.Create(ctx, &b))

	assert.NoError(t, r.Update(ctx, "b1", map[string]any{"name": "renamed", "is_public": true}))

	got, err := r.GetByID(ctx, "b1")
	assert.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.True(t, got.IsPublic)
}

func TestBankRepository_DeleteCascade(t *testing.T) {
	db := newTestDB(t)
	r := NewBankRepository(db)
	ctx := context.Background()

	b := mkBank("b1", 1, time.Now())
	assert.NoError(t, r.Create(ctx, &b))
	keep := mkBank("b2", 1, time.Now())
	assert.NoError(t, r.Create(ctx, &keep))

	c1 := mkCategory("c1", "b1", 1, "slug-c1", 0)
	c2 := mkCategory("c2", "b1", 1, "slug-c2", 1)
	c3 := mkCategory("c3", "b2", 1, "slug-c3", 0) // чужая категория, не должна удалиться
	for _, c := range []model.Category{c1, c2, c3} {
		cat := c
		assert.NoError(t, db.Create(&cat).Error)
	}
	for _, l := range []model.Link{
		mkLink("l1", "c1", 1, 0),
		mkLink("l2", "c2", 1, 0),
		mkLink("l3", "c3", 1, 0),
	} {
		link := l
		assert.NoError(t, db.Create(&link).Error)
	}

	assert.NoError(t, r.DeleteCascade(ctx, "b1"))

	// банк удалён
	_, err := r.GetByID(ctx, "b1")
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	// категории и ссылки банка b1 удалены
	var catCount int64
	db.Model(&model.Category{}).Where("bank_id = ?", "b1").Count(&catCount)
	assert.Zero(t, catCount)
	var linkCount int64
	db.Model(&model.Link{}).Where("category_id IN ?", []string{"c1", "c2"}).Count(&linkCount)
	assert.Zero(t, linkCount)

	// соседний банк не пострадал
	got, err := r.GetByID(ctx, "b2")
	assert.NoError(t, err)
	assert.Len(t, got.Categories, 1)
	var l3 model.Link
	assert.NoError(t, db.Where("id = ?", "l3").First(&l3).Error)
}
