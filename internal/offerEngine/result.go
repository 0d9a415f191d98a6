package engine

// Result is the closed set of outcomes for bid and purchase submissions.
// Expected rejections are first-class values, never errors.
type Result int

const (
	ResultNotFound Result = iota
	ResultExpired
	ResultAlreadyPurchased
	ResultTooLow
	ResultTooHigh
	ResultSuccess
	ResultServerError
)

func (r Result) String() string {
	switch r {
	case ResultNotFound:
		return "not_found"
	case ResultExpired:
		return "expired"
	case ResultAlreadyPurchased:
		return "already_purchased"
	case ResultTooLow:
		return "too_low"
	case ResultTooHigh:
		return "too_high"
	case ResultSuccess:
		return "success"
	case ResultServerError:
		return "server_error"
	default:
		return "unknown"
	}
}
