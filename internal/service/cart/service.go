package cart

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// Service управляет корзиной клиента. Проверка стока здесь — вежливость
// для UX: авторитетная проверка происходит на checkout и ещё раз на approve,
// потому что сток успевает измениться между добавлением и покупкой.
type Service struct {
	products domain.ProductRepository
	carts    domain.CartRepository
	logger   *log.Entry
}

// NewService конструирует сервис корзины.
func NewService(products domain.ProductRepository, carts domain.CartRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "cart")
	}
	return &Service{
		products: products,
		carts:    carts,
		logger:   logger,
	}
}

// AddItem добавляет товар в корзину или увеличивает количество существующей
// позиции. Суммарное количество сверяется с текущим стоком.
func (s *Service) AddItem(customerID, productID string, qty int32) (domain.CartItem, error) {
	if qty <= 0 {
		return domain.CartItem{}, domain.ErrInvalidQuantity
	}

	product, err := s.products.Get(productID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if !product.IsActive {
		return domain.CartItem{}, domain.ErrProductUnavailable
	}

	now := time.Now().UTC()
	item, err := s.carts.FindByProduct(customerID, productID)
	switch {
	case err == nil:
		item.Quantity += qty
		item.UpdatedAt = now
	case domain.IsNotFound(err):
		item = domain.CartItem{
			ID:         uuid.NewString(),
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   qty,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	default:
		return domain.CartItem{}, err
	}

	if !product.InStock(item.Quantity) {
		return domain.CartItem{}, &domain.InsufficientStockError{
			ProductID: productID,
			Requested: item.Quantity,
			Available: product.StockQuantity,
		}
	}

	stored, err := s.carts.Upsert(item)
	if err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("failed to upsert cart item")
		return domain.CartItem{}, err
	}

	s.logger.WithFields(log.Fields{
		"customer_id": customerID,
		"product_id":  productID,
		"qty":         stored.Quantity,
	}).Debug("cart item added")
	return stored, nil
}

// UpdateItem устанавливает новое количество позиции корзины.
func (s *Service) UpdateItem(customerID, itemID string, qty int32) (domain.CartItem, error) {
	if qty <= 0 {
		return domain.CartItem{}, domain.ErrInvalidQuantity
	}

	item, err := s.carts.GetItem(customerID, itemID)
	if err != nil {
		return domain.CartItem{}, err
	}

	product, err := s.products.Get(item.ProductID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if !product.InStock(qty) {
		return domain.CartItem{}, &domain.InsufficientStockError{
			ProductID: item.ProductID,
			Requested: qty,
			Available: product.StockQuantity,
		}
	}

	item.Quantity = qty
	item.UpdatedAt = time.Now().UTC()
	return s.carts.Upsert(item)
}

// RemoveItem удаляет позицию из корзины клиента.
func (s *Service) RemoveItem(customerID, itemID string) error {
	return s.carts.Delete(customerID, itemID)
}

// GetCart возвращает корзину со строчными и итоговой суммами; без побочных
// эффектов. Суммы считаются от текущих цен каталога.
func (s *Service) GetCart(customerID string) (domain.CartView, error) {
	items, err := s.carts.ListByCustomer(customerID)
	if err != nil {
		return domain.CartView{}, err
	}

	view := domain.CartView{
		CustomerID: customerID,
		Lines:      make([]domain.CartLine, 0, len(items)),
	}
	for _, item := range items {
		product, err := s.products.Get(item.ProductID)
		if err != nil {
			return domain.CartView{}, err
		}
		lineTotal := int64(item.Quantity) * product.PriceMinor
		view.Lines = append(view.Lines, domain.CartLine{
			Item:           item,
			Product:        product,
			LineTotalMinor: lineTotal,
		})
		view.TotalMinor += lineTotal
	}

	return view, nil
}
