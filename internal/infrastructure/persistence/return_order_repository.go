package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormReturnOrderRepository implements ReturnOrderRepository using GORM
type GormReturnOrderRepository struct {
	db *gorm.DB
}

// NewGormReturnOrderRepository creates a new GormReturnOrderRepository
func NewGormReturnOrderRepository(db *gorm.DB) *GormReturnOrderRepository {
	return &GormReturnOrderRepository{db: db}
}

// FindByID finds a return order by its ID
func (r *GormReturnOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.ReturnOrder, error) {
	var order trade.ReturnOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByReturnNumber finds a return order by its return number
func (r *GormReturnOrderRepository) FindByReturnNumber(ctx context.Context, returnNumber string) (*trade.ReturnOrder, error) {
	var order trade.ReturnOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("return_number = ?", returnNumber).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all return orders matching the filter
func (r *GormReturnOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.ReturnOrder, error) {
	var orders []trade.ReturnOrder
	query := r.applyFilter(r.db.WithContext(ctx).Model(&trade.ReturnOrder{}), filter)

	if err := query.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates a return order together with its items
func (r *GormReturnOrderRepository) Save(ctx context.Context, order *trade.ReturnOrder) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

// Delete deletes a return order and its items
func (r *GormReturnOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&trade.ReturnOrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&trade.ReturnOrder{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts return orders matching the filter
func (r *GormReturnOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&trade.ReturnOrder{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateReturnNumber generates the next unique return number.
// Format: RT-YYYYMMDD-NNNN (e.g., RT-20260901-0001)
func (r *GormReturnOrderRepository) GenerateReturnNumber(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("RT-%s-", time.Now().Format("20060102"))

	var lastNumber string
	err := r.db.WithContext(ctx).
		Model(&trade.ReturnOrder{}).
		Where("return_number LIKE ?", prefix+"%").
		Order("return_number DESC").
		Limit(1).
		Pluck("return_number", &lastNumber).Error
	if err != nil {
		return "", err
	}

	return prefix + nextSequence(lastNumber), nil
}

// applyFilter applies filter options to the query
func (r *GormReturnOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, ReturnOrderSortFields, "")
	if sortField != "" {
		query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormReturnOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("return_number ILIKE ? OR sale_order_number ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "sale_order_number":
			query = query.Where("sale_order_number = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormReturnOrderRepository implements ReturnOrderRepository
var _ trade.ReturnOrderRepository = (*GormReturnOrderRepository)(nil)
