package cartengine

import (
	"log"
	"sync/atomic"
	"time"

	"dealaxe/models"
)

// Marketplace labels used when an add request names a platform the product
// snapshot does not carry; the reducer heals the reference instead of
// leaving it dangling.
const (
	MarketplacePlatformName = "DealAxe Store"
	defaultDeliveryDate     = "3-5 business days"
	defaultReturnPolicy     = "30 days replacement"
)

// ActionType enumerates the cart state transitions.
type ActionType string

const (
	AddToCart      ActionType = "ADD_TO_CART"
	RemoveFromCart ActionType = "REMOVE_FROM_CART"
	UpdateQuantity ActionType = "UPDATE_QUANTITY"
	ClearCart      ActionType = "CLEAR_CART"
)

// Action is one dispatch against the cart. Fields are read according to
// Type; unused fields are ignored.
type Action struct {
	Type       ActionType      `json:"type"`
	Product    *models.Product `json:"product,omitempty"`
	ProductID  int             `json:"productId,omitempty"`
	Quantity   int             `json:"quantity,omitempty"`
	PlatformID string          `json:"platformId,omitempty"`
}

// lineSeq issues unique line-item ids. Seeded from the wall clock so ids
// stay unique across restarts within the same session's lifetime.
var lineSeq atomic.Int64

func init() {
	lineSeq.Store(time.Now().UnixNano())
}

func nextLineID() int64 {
	return lineSeq.Add(1)
}

// Reduce applies one action to the cart and returns the next state. It is a
// pure function over its inputs: the given state and action are never
// mutated, and the returned state's Total is always recomputed from the
// returned item set. Unknown actions return the state unchanged.
func Reduce(state models.CartState, action Action) models.CartState {
	switch action.Type {
	case AddToCart:
		return reduceAdd(state, action)
	case RemoveFromCart:
		items := make([]models.CartLineItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID != action.ProductID {
				items = append(items, item)
			}
		}
		return models.CartState{Items: items, Total: Total(items)}
	case UpdateQuantity:
		// The reducer trusts its input; callers clamp quantities to >= 1
		// before dispatch.
		items := make([]models.CartLineItem, len(state.Items))
		copy(items, state.Items)
		for i := range items {
			if items[i].Product.ID == action.ProductID {
				items[i].Quantity = action.Quantity
			}
		}
		return models.CartState{Items: items, Total: Total(items)}
	case ClearCart:
		return models.EmptyCart()
	default:
		return state
	}
}

func reduceAdd(state models.CartState, action Action) models.CartState {
	if action.Product == nil || action.Product.ID == 0 {
		log.Printf("cartengine: rejecting add with invalid product data: %+v", action)
		return state
	}

	productToAdd := CloneProduct(*action.Product)

	// Merge by product identity: an existing line for the same product id
	// absorbs the quantity, the requested platform is ignored.
	for i, item := range state.Items {
		if item.Product.ID == productToAdd.ID {
			items := make([]models.CartLineItem, len(state.Items))
			copy(items, state.Items)
			items[i].Quantity += action.Quantity
			return models.CartState{Items: items, Total: Total(items)}
		}
	}

	if !platformExists(productToAdd, action.PlatformID) {
		if len(productToAdd.Platforms) > 0 {
			// Clone the first platform under the requested id and splice it
			// in front so it becomes the default-displayed offer.
			substitute := productToAdd.Platforms[0]
			substitute.ID = action.PlatformID
			substitute.Name = MarketplacePlatformName
			productToAdd.Platforms = append(
				[]models.Platform{substitute}, productToAdd.Platforms[1:]...)
		} else {
			// No platforms at all. Price 0 signals a caller bug upstream,
			// not a valid offer.
			productToAdd.Platforms = []models.Platform{{
				ID:           action.PlatformID,
				Name:         MarketplacePlatformName,
				Price:        0,
				CODAvailable: true,
				FreeDelivery: true,
				DeliveryDate: defaultDeliveryDate,
				ReturnPolicy: defaultReturnPolicy,
				IsBestDeal:   true,
			}}
		}
	}

	items := make([]models.CartLineItem, len(state.Items), len(state.Items)+1)
	copy(items, state.Items)
	items = append(items, models.CartLineItem{
		ID:         nextLineID(),
		Product:    productToAdd,
		Quantity:   action.Quantity,
		PlatformID: action.PlatformID,
	})
	return models.CartState{Items: items, Total: Total(items)}
}

// Total derives the cart total from scratch: quantity times the resolved
// platform price per line. A line whose platform id no longer resolves
// contributes 0 rather than failing.
func Total(items []models.CartLineItem) float64 {
	var total float64
	for _, item := range items {
		for _, platform := range item.Product.Platforms {
			if platform.ID == item.PlatformID {
				total += platform.Price * float64(item.Quantity)
				break
			}
		}
	}
	return total
}

// CloneProduct deep-copies a product so the cart never aliases the caller's
// platforms slice.
func CloneProduct(p models.Product) models.Product {
	clone := p
	clone.Platforms = make([]models.Platform, len(p.Platforms))
	copy(clone.Platforms, p.Platforms)
	for i, platform := range p.Platforms {
		if platform.OriginalPrice != nil {
			op := *platform.OriginalPrice
			clone.Platforms[i].OriginalPrice = &op
		}
	}
	return clone
}

func platformExists(p models.Product, platformID string) bool {
	for _, platform := range p.Platforms {
		if platform.ID == platformID {
			return true
		}
	}
	return false
}
