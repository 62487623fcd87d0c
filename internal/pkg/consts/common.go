package consts

// canal 变更类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// HATEOAS rel
const (
	RelPost          = "post"
	RelReferencePost = "reference_post"
	RelPreviousPage  = "previous_page"
	RelNextPage      = "next_page"
)

const (
	ContextUsername = "username"
	ContextUserID   = "user_id"
)
