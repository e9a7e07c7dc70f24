package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slastice/backend/internal/models"
)

// ShoppingService manages the per-user shopping list. The list row is
// created on the first item add; reads of a missing list return an empty
// item slice, mutations of a missing list return ErrNotFound.
type ShoppingService struct {
	db *gorm.DB
}

func NewShoppingService(db *gorm.DB) *ShoppingService {
	return &ShoppingService{db: db}
}

// GetItems returns the owner's items, oldest first. No list yet means an
// empty array, not an error.
func (s *ShoppingService) GetItems(ctx context.Context, ownerID uuid.UUID) (models.ItemList, error) {
	list, err := s.loadList(s.db.WithContext(ctx), ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.ItemList{}, nil
		}
		return nil, err
	}
	return list.Items, nil
}

// AddItem appends a new item, creating the list on first use.
func (s *ShoppingService) AddItem(ctx context.Context, ownerID uuid.UUID, name string, completed bool) (*models.ShoppingItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("item name is required: %w", ErrValidation)
	}

	item := models.ShoppingItem{
		ID:        uuid.New(),
		Name:      name,
		Completed: completed,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.loadList(tx, ownerID)
		if errors.Is(err, ErrNotFound) {
			list = &models.ShoppingList{OwnerID: ownerID, Items: models.ItemList{item}}
			return tx.Create(list).Error
		}
		if err != nil {
			return err
		}
		list.Items = append(list.Items, item)
		return tx.Model(list).Update("items", list.Items).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces the completed flag of one item.
func (s *ShoppingService) UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, completed bool) (*models.ShoppingItem, error) {
	var updated models.ShoppingItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.loadList(tx, ownerID)
		if err != nil {
			return err
		}
		for i := range list.Items {
			if list.Items[i].ID == itemID {
				list.Items[i].Completed = completed
				updated = list.Items[i]
				return tx.Model(list).Update("items", list.Items).Error
			}
		}
		return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveItem deletes one item by id.
func (s *ShoppingService) RemoveItem(ctx context.Context, ownerID, itemID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.loadList(tx, ownerID)
		if err != nil {
			return err
		}
		for i := range list.Items {
			if list.Items[i].ID == itemID {
				list.Items = append(list.Items[:i], list.Items[i+1:]...)
				return tx.Model(list).Update("items", list.Items).Error
			}
		}
		return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	})
}

// RemoveCompleted filters out every completed item. A list with nothing
// completed is a successful no-op.
func (s *ShoppingService) RemoveCompleted(ctx context.Context, ownerID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.loadList(tx, ownerID)
		if err != nil {
			return err
		}
		kept := list.Items[:0]
		for _, item := range list.Items {
			if !item.Completed {
				kept = append(kept, item)
			}
		}
		return tx.Model(list).Update("items", kept).Error
	})
}

// ClearItems empties the list.
func (s *ShoppingService) ClearItems(ctx context.Context, ownerID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.loadList(tx, ownerID)
		if err != nil {
			return err
		}
		return tx.Model(list).Update("items", models.ItemList{}).Error
	})
}

func (s *ShoppingService) loadList(tx *gorm.DB, ownerID uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := tx.First(&list, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shopping list for %s: %w", ownerID, ErrNotFound)
		}
		return nil, err
	}
	return &list, nil
}
