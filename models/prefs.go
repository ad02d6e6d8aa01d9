package models

// UserPreferences holds the six importance weights that drive comparison
// scoring. Each weight is on a 1-5 scale.
type UserPreferences struct {
	PriceImportance            int `json:"priceImportance" bson:"priceImportance"`
	DeliveryImportance         int `json:"deliveryImportance" bson:"deliveryImportance"`
	CODImportance              int `json:"codImportance" bson:"codImportance"`
	ReturnPolicyImportance     int `json:"returnPolicyImportance" bson:"returnPolicyImportance"`
	RatingImportance           int `json:"ratingImportance" bson:"ratingImportance"`
	SellerReputationImportance int `json:"sellerReputationImportance" bson:"sellerReputationImportance"`
}

// DefaultPreferences is neutral on all factors.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		PriceImportance:            3,
		DeliveryImportance:         3,
		CODImportance:              3,
		ReturnPolicyImportance:     3,
		RatingImportance:           3,
		SellerReputationImportance: 3,
	}
}

// ComparePreferences is a second, legacy preferences document persisted
// alongside UserPreferences. Its consumer is unspecified; the two schemas
// are deliberately kept independent.
type ComparePreferences struct {
	Price    bool `json:"price" bson:"price"`
	Delivery bool `json:"delivery" bson:"delivery"`
	Rating   bool `json:"rating" bson:"rating"`
}

// DefaultComparePreferences enables every column.
func DefaultComparePreferences() ComparePreferences {
	return ComparePreferences{Price: true, Delivery: true, Rating: true}
}
