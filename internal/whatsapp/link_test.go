package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces as percent20", in: "hello world", want: "hello%20world"},
		{name: "newlines", in: "a\nb", want: "a%0Ab"},
		{name: "asterisks", in: "*bold*", want: "%2Abold%2A"},
		{name: "rupee sign", in: "₹80", want: "%E2%82%B980"},
		// A literal "+" must survive as %2B while spaces become %20;
		// form encoding would conflate the two.
		{name: "plus sign", in: "1+1 = 2", want: "1%2B1%20%3D%202"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeText(tt.in))
		})
	}
}

func TestOrderLink(t *testing.T) {
	link := OrderLink("918072008098", "🌿 Hello AMALA ORGANICS Team,")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/918072008098?text="))
	assert.Contains(t, link, "%F0%9F%8C%BF%20Hello%20AMALA%20ORGANICS%20Team%2C")
	assert.NotContains(t, link, "+")
}
