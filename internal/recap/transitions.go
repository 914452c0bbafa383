package recap

import (
	"math"
)

// TransitionType, slaytlar arası geçiş animasyonu.
type TransitionType string

const (
	TransitionSlideDown  TransitionType = "slideDown"
	TransitionSlideUp    TransitionType = "slideUp"
	TransitionFade       TransitionType = "fade"
	TransitionZoom       TransitionType = "zoom"
	TransitionSlideLeft  TransitionType = "slideLeft"
	TransitionSlideRight TransitionType = "slideRight"
)

var transitionTypes = []TransitionType{
	TransitionSlideDown,
	TransitionSlideUp,
	TransitionFade,
	TransitionZoom,
	TransitionSlideLeft,
	TransitionSlideRight,
}

// IdleAnimation, slayt görünürken süren pan/zoom animasyonu.
type IdleAnimation string

const (
	IdleZoomSoft     IdleAnimation = "zoomSoft"
	IdlePanX         IdleAnimation = "panX"
	IdlePanY         IdleAnimation = "panY"
	IdleZoomStrong   IdleAnimation = "zoomStrong"
	IdleRotateSubtle IdleAnimation = "rotateSubtle"
)

var idleAnimations = []IdleAnimation{
	IdleZoomSoft,
	IdlePanX,
	IdlePanY,
	IdleZoomStrong,
	IdleRotateSubtle,
}

// TransitionFor, slayt indeksine göre geçiş türünü seçer. Rastgelelik yok;
// aynı indeks her zaman aynı geçişi alır.
func TransitionFor(index int) TransitionType {
	return transitionTypes[index%len(transitionTypes)]
}

// IdleAnimationFor, slayt indeksine göre bekleme animasyonunu seçer.
func IdleAnimationFor(index int) IdleAnimation {
	return idleAnimations[index%len(idleAnimations)]
}

// TransitionVariantCount ve IdleVariantCount test ve istemci tarafı için
// sabit küme boyutlarını duyurur.
const (
	TransitionVariantCount = 6
	IdleVariantCount       = 5
)

// LikeMarker, beğeni başına görüntü merkezinin çevresine yerleştirilen
// animasyonlu işaretçi. Koordinatlar yüzde cinsindendir (50,50 = merkez).
type LikeMarker struct {
	Angle      float64 `json:"angle"`
	Radius     float64 `json:"radius"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	DelayMilli int     `json:"delay_ms"`
}

// LikeMarkers, n beğeni için işaretçileri eşit açısal aralıklarla, işaretçi
// indeksinden türeyen değişken yarıçaplarla dağıtır.
func LikeMarkers(n int) []LikeMarker {
	if n <= 0 {
		return nil
	}

	markers := make([]LikeMarker, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 360.0 / float64(n)
		radius := math.Min(30+float64(i%4)*15, 50)
		rad := angle * math.Pi / 180

		markers[i] = LikeMarker{
			Angle:      angle,
			Radius:     radius,
			X:          50 + math.Cos(rad)*radius,
			Y:          50 + math.Sin(rad)*radius,
			DelayMilli: i * 150,
		}
	}
	return markers
}
