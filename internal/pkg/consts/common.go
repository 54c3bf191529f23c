package consts

const (
	TokenCookieName = "token"
	UserIDKey       = "user_id"
	UsernameKey     = "username"
)

const (
	PostImagePrefix = "post-images/"
	PostFilePrefix  = "post-files/"
)

const (
	UploadImageField = "image"
	UploadFileField  = "file"
)
