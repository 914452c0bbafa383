package utils

import (
	"math/rand"
	"time"
)

// Albüm kodları büyük harf ve rakamlardan oluşur; istemci girişi
// uppercase'e çevirdiği için küçük harf kullanılmaz.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var randSource = rand.NewSource(time.Now().UnixNano())
var randGenerator = rand.New(randSource)

func GenerateEventCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[randGenerator.Intn(len(codeCharset))]
	}
	return string(b)
}
