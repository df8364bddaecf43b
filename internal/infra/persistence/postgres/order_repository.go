package postgres

import (
	"context"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order header.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid customer or address reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

// FindOrderByID retrieves an order by id.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByIDAndCustomer retrieves an order only when it belongs to the given customer.
func (repo *orderRepository) FindOrderByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOrderDomain(&orderM), nil
}

// FindCartByCustomer retrieves the customer's open cart order, if any.
func (repo *orderRepository) FindCartByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, entity.OrderStatusCart).
		Order("date DESC").
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByCustomer retrieves the customer's non-cart orders, newest first,
// flagging the ones with a specialized request.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.OrderSummary, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND status <> ?", customerID, entity.OrderStatusCart).
		Order("date DESC").
		Find(&orderModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(orderModels) == 0 {
		return nil, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orderModels))
	for _, orderM := range orderModels {
		orderIDs = append(orderIDs, orderM.ID)
	}

	var specModels []*model.SpecializedOrderModel
	err = repo.db.WithContext(ctx).
		Where("order_id IN ? AND record_state = ?", orderIDs, entity.RecordStateActive).
		Find(&specModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	specialized := make(map[uuid.UUID]bool, len(specModels))
	for _, specM := range specModels {
		specialized[specM.OrderID] = true
	}

	summaries := make([]*repository.OrderSummary, 0, len(orderModels))
	for _, orderM := range orderModels {
		summaries = append(summaries, &repository.OrderSummary{
			Order:       toOrderDomain(orderM),
			Specialized: specialized[orderM.ID],
		})
	}

	return summaries, nil
}

// UpdateOrder persists order header changes.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"address_id":    order.AddressID,
			"date":          order.Date,
			"total":         order.Total,
			"status":        order.Status,
			"includes_dish": order.IncludesDish,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateOrderStatus sets the order state.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CreateOrderItem persists a new order line.
func (repo *orderRepository) CreateOrderItem(ctx context.Context, item *entity.OrderItem) error {
	itemM := &model.OrderItemModel{
		ID:       item.ID,
		OrderID:  item.OrderID,
		DishID:   item.DishID,
		Quantity: item.Quantity,
		Subtotal: item.Subtotal,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid order or dish reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	item.ID = itemM.ID

	return nil
}

// FindOrderItem retrieves the line for one dish within an order, if any.
func (repo *orderRepository) FindOrderItem(ctx context.Context, orderID, dishID uuid.UUID) (*entity.OrderItem, error) {
	var itemM model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ? AND dish_id = ?", orderID, dishID).
		First(&itemM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderItemNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOrderItemDomain(&itemM), nil
}

// FindItemsByOrder retrieves the order's lines with their dishes.
func (repo *orderRepository) FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderItemDetail, error) {
	var itemModels []*model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Preload("Dish").
		Where("order_id = ?", orderID).
		Find(&itemModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	details := make([]*repository.OrderItemDetail, 0, len(itemModels))
	for _, itemM := range itemModels {
		detail := &repository.OrderItemDetail{Item: toOrderItemDomain(itemM)}
		if itemM.Dish != nil {
			detail.Dish = toDishDomain(itemM.Dish)
		}
		details = append(details, detail)
	}

	return details, nil
}

// UpdateOrderItem persists line changes.
func (repo *orderRepository) UpdateOrderItem(ctx context.Context, item *entity.OrderItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"quantity": item.Quantity,
			"subtotal": item.Subtotal,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// DeleteOrderItem removes a line from an order.
func (repo *orderRepository) DeleteOrderItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderItemModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// DeleteItemsByOrder removes every line from an order.
func (repo *orderRepository) DeleteItemsByOrder(ctx context.Context, orderID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItemModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear order items")
	}

	return nil
}

// SumOrderItems recomputes the order total from its lines.
func (repo *orderRepository) SumOrderItems(ctx context.Context, orderID uuid.UUID) (float64, error) {
	var total float64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&total).Error

	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// CreateDeliveryControl persists a delivery tracking row.
func (repo *orderRepository) CreateDeliveryControl(ctx context.Context, control *entity.DeliveryControl) error {
	var deliveredAt *time.Time
	if !control.DeliveredAt.IsZero() {
		deliveredAt = &control.DeliveredAt
	}

	controlM := &model.DeliveryControlModel{
		ID:          control.ID,
		OrderID:     control.OrderID,
		DeliveredAt: deliveredAt,
		Confirmed:   control.Confirmed,
		CourierID:   control.CourierID,
	}

	if err := repo.db.WithContext(ctx).Create(controlM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "delivery control already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery control")
	}

	control.ID = controlM.ID

	return nil
}

// FindDeliveryControlByOrder retrieves the tracking row of an order.
func (repo *orderRepository) FindDeliveryControlByOrder(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryControl, error) {
	var controlM model.DeliveryControlModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&controlM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryControlNotFound
		}

		return nil, errors.WithStack(err)
	}

	var deliveredAt time.Time
	if controlM.DeliveredAt != nil {
		deliveredAt = *controlM.DeliveredAt
	}

	return &entity.DeliveryControl{
		ID:          controlM.ID,
		OrderID:     controlM.OrderID,
		DeliveredAt: deliveredAt,
		Confirmed:   controlM.Confirmed,
		CourierID:   controlM.CourierID,
	}, nil
}

// ConfirmDelivery marks the tracking row confirmed at the given time.
func (repo *orderRepository) ConfirmDelivery(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryControlModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"confirmed":    true,
			"delivered_at": at,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to confirm delivery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryControlNotFound
	}

	return nil
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		AddressID:    m.AddressID,
		Date:         m.Date,
		Total:        m.Total,
		Status:       m.Status,
		IncludesDish: m.IncludesDish,
	}
}

func fromOrderDomain(e *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:           e.ID,
		CustomerID:   e.CustomerID,
		AddressID:    e.AddressID,
		Date:         e.Date,
		Total:        e.Total,
		Status:       e.Status,
		IncludesDish: e.IncludesDish,
	}
}

func toOrderItemDomain(m *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:       m.ID,
		OrderID:  m.OrderID,
		DishID:   m.DishID,
		Quantity: m.Quantity,
		Subtotal: m.Subtotal,
	}
}
