package model

import (
	"errors"

	"github.com/google/uuid"
)

// LookupLimit - số option tối đa cho dropdown artists/labels
const LookupLimit = 50

// Cache key prefix của dropdown lookups; artist/label service xóa theo pattern prefix + "*" khi ghi
const (
	ArtistLookupPrefix = "formvalidation:artists:"
	LabelLookupPrefix  = "formvalidation:labels:"
)

var ErrUPCRequired = errors.New("UPC code is required")

type ValidateUPCRequest struct {
	UPC string `json:"upc" form:"upc"`
}

type UPCCheck struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Option - một dòng dropdown (id, name)
type Option struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var Genres = []string{
	"Pop", "Rock", "Hip Hop", "R&B", "Country", "Electronic", "Jazz", "Classical",
	"Folk", "Blues", "Reggae", "Punk", "Metal", "Alternative", "Indie", "Dance",
	"House", "Techno", "Trance", "Dubstep", "Ambient", "World", "Latin", "Gospel",
	"Soundtrack", "Comedy", "Spoken Word", "Children", "Holiday", "Other",
}

var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
	{Code: "other", Name: "Other"},
}
