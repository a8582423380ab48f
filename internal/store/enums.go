package store

// User role ENUMs
const (
	RoleUser     = "USER"
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
	RoleAuditor  = "AUDITOR"
)

// Event condition ENUMs
const (
	ConditionFirstLogin       = "FIRST_LOGIN"
	ConditionInviteThree      = "INVITE_THREE"
	ConditionLoginThree       = "LOGIN_THREE"
	ConditionLoginSevenRecent = "LOGIN_SEVEN_RECENT"
	ConditionDailyLogin       = "DAILY_LOGIN"
)

// Reward type ENUMs
const (
	RewardTypeItem     = "ITEM"
	RewardTypePoint    = "POINT"
	RewardTypeCoupon   = "COUPON"
	RewardTypeCurrency = "CURRENCY"
)

// Reward request status ENUMs
const (
	RequestStatusPending = "PENDING"
	RequestStatusSuccess = "SUCCESS"
	RequestStatusFailed  = "FAILED"
)

var (
	Roles           = []string{RoleUser, RoleAdmin, RoleOperator, RoleAuditor}
	Conditions      = []string{ConditionFirstLogin, ConditionInviteThree, ConditionLoginThree, ConditionLoginSevenRecent, ConditionDailyLogin}
	RewardTypes     = []string{RewardTypeItem, RewardTypePoint, RewardTypeCoupon, RewardTypeCurrency}
	RequestStatuses = []string{RequestStatusPending, RequestStatusSuccess, RequestStatusFailed}
)

// IsOneOf reports whether value is in allowed
func IsOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
