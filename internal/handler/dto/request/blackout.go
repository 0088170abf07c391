package request

type BlockDateRequest struct {
	Date   string `json:"date" binding:"required,isodate"`
	Reason string `json:"reason" binding:"max=255"`
}
