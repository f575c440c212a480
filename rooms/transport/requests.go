package transport

// CreateRoomRequest is the body of POST /api/video-rooms.
type CreateRoomRequest struct {
	// Name: display name, non-blank, max 255 characters
	Name string `json:"name" binding:"required,roomname"`
}

// RoomURI binds the room id path segment.
type RoomURI struct {
	RoomID string `uri:"roomId" binding:"required,roomid"`
}

// StoreBlurStrengthRequest is the body of POST /api/video-rooms/store-blur-strength.
// Pointer field so 0 survives the required check.
type StoreBlurStrengthRequest struct {
	BlurStrength *int `json:"blurStrength" binding:"required,blurstrength"`
}
