package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

func init() {
	MustRegisterGin("roomname", ValidateRoomName)
	MustRegisterGinAlias("roomid", "uuid4")
	MustRegisterGinAlias("blurstrength", "min=0,max=10")
}

// ValidateRoomName validates a room display name: non-blank, max 255 characters.
// The limit counts runes so multibyte names get the full length.
func ValidateRoomName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.TrimSpace(name) == "" {
		return false
	}
	return utf8.RuneCountInString(name) <= 255
}
