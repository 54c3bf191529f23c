package consts

const (
	RevokedTokenKey = "auth:revoked:"
	MediaTempKey    = "media:temp"
)
