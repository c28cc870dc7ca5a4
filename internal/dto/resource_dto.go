package dto

// Create/update bodies are typed and validator-tagged per resource. The
// store itself stays schema-less; this boundary is where malformed input
// stops.

type ProductPayload struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"img,omitempty"`
	MinOrderQty  int     `json:"minOrderQty,omitempty" validate:"omitempty,gte=1"`
	AvailableQty int     `json:"availableQty,omitempty" validate:"omitempty,gte=0"`
}

type ReviewPayload struct {
	Name    string `json:"name" validate:"required"`
	Comment string `json:"comment" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

type OrderPayload struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName,omitempty"`
	UserEmail   string  `json:"userEmail" validate:"required,email"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	UnitPrice   float64 `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
}

// UpsertUserRequest carries only profile fields. Role is deliberately not
// settable here; promotion goes through the admin-gated route.
type UpsertUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

type CreateResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type UpsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	Email        string `json:"email"`
}

type UpsertUserResponse struct {
	Result UpsertResult `json:"result"`
	Token  string       `json:"token"`
}

type PromoteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	MatchedCount int64 `json:"matchedCount"`
}

type AdminFlagResponse struct {
	Admin bool `json:"admin"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
