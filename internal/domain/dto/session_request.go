package dto

// CreateSessionRequest is the optional body of POST /sessions.
type CreateSessionRequest struct {
	Months int `json:"months" example:"24"`
}

// MonthsRequest changes a session's month count.
type MonthsRequest struct {
	Months int `json:"months" binding:"required" example:"12"`
}

// SelectRequest sets one taxonomy level of the session selection.
type SelectRequest struct {
	Code string `json:"code" binding:"required" example:"59"`
}

// AddVehicleRequest adds a vehicle to the comparison. When every identity
// field is empty the session's current selection is used.
type AddVehicleRequest struct {
	VehicleType string `json:"vehicle_type" example:"cars"`
	BrandCode   string `json:"brand_code" example:"59"`
	ModelCode   string `json:"model_code" example:"5940"`
	YearCode    string `json:"year_code" example:"2014-1"`
	Months      int    `json:"months" example:"12"`
}

// Empty reports whether no identity field was supplied.
func (r AddVehicleRequest) Empty() bool {
	return r.VehicleType == "" && r.BrandCode == "" && r.ModelCode == "" && r.YearCode == ""
}
