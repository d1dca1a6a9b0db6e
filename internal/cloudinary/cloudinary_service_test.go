package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "VersionedURL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/giftstore/mug-abc.jpg",
			want: "giftstore/mug-abc",
		},
		{
			name: "NoVersionSegment",
			url:  "https://res.cloudinary.com/demo/image/upload/giftstore/hamper.png",
			want: "giftstore/hamper",
		},
		{
			name: "NoFolder",
			url:  "https://res.cloudinary.com/demo/image/upload/v99/necklace.webp",
			want: "necklace",
		},
		{
			name: "NotCloudinary",
			url:  "https://placehold.co/800x600.png",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractPublicID(tc.url))
		})
	}
}
