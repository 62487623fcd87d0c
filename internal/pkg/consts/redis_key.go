package consts

const (
	UserProfileKey         = "user:profile:"
	UserFolloweesKey       = "user:followees:"
	UserStatisticsDirtyKey = "user:statistics:dirty"
)

const (
	CounterReconcileLock = "lock:counter:reconcile"
)

// EmptySetSentinel 占位成员，区分“空集合”和“未缓存”
const EmptySetSentinel = "0"
