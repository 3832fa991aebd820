package dto

type SignUpRequest struct {
	Username       string `json:"username" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Salary         int64  `json:"salary"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateSalaryRequest struct {
	NewSalary int64 `json:"new_salary" binding:"gte=0"`
}

type SubmitBookingRequest struct {
	PickupLat float64 `json:"pickup_lat" binding:"gte=-90,lte=90"`
	PickupLon float64 `json:"pickup_lon" binding:"gte=-180,lte=180"`
	DestLat   float64 `json:"dest_lat" binding:"gte=-90,lte=90"`
	DestLon   float64 `json:"dest_lon" binding:"gte=-180,lte=180"`
	// LifetimeSeconds bounds how long the booking may wait for a pool;
	// zero means the server default.
	LifetimeSeconds int64 `json:"lifetime_seconds" binding:"gte=0"`
}
