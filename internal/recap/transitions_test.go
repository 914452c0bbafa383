package recap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionFor_Deterministic(t *testing.T) {
	// Aynı indeks her zaman aynı geçişi verir; küme indeks mod N ile taranır.
	assert.Equal(t, TransitionSlideDown, TransitionFor(0))
	assert.Equal(t, TransitionSlideUp, TransitionFor(1))
	assert.Equal(t, TransitionFade, TransitionFor(2))
	assert.Equal(t, TransitionZoom, TransitionFor(3))
	assert.Equal(t, TransitionSlideLeft, TransitionFor(4))
	assert.Equal(t, TransitionSlideRight, TransitionFor(5))

	// Küme boyutunu aşan indeksler başa sarar.
	assert.Equal(t, TransitionFor(0), TransitionFor(TransitionVariantCount))
	assert.Equal(t, TransitionFor(2), TransitionFor(TransitionVariantCount+2))
}

func TestIdleAnimationFor_Deterministic(t *testing.T) {
	assert.Equal(t, IdleZoomSoft, IdleAnimationFor(0))
	assert.Equal(t, IdleRotateSubtle, IdleAnimationFor(4))
	assert.Equal(t, IdleAnimationFor(1), IdleAnimationFor(IdleVariantCount+1))
}

func TestLikeMarkers_Placement(t *testing.T) {
	markers := LikeMarkers(4)
	require.Len(t, markers, 4)

	// Açılar eşit aralıklı: i * 360 / n.
	assert.Equal(t, 0.0, markers[0].Angle)
	assert.Equal(t, 90.0, markers[1].Angle)
	assert.Equal(t, 180.0, markers[2].Angle)
	assert.Equal(t, 270.0, markers[3].Angle)

	// Yarıçap işaretçi indeksinden türer ve 50'de kırpılır.
	assert.Equal(t, 30.0, markers[0].Radius)
	assert.Equal(t, 45.0, markers[1].Radius)
	assert.Equal(t, 50.0, markers[2].Radius)
	assert.Equal(t, 50.0, markers[3].Radius)

	// İlk işaretçi merkezin sağında: (50 + r, 50).
	assert.InDelta(t, 80.0, markers[0].X, 1e-9)
	assert.InDelta(t, 50.0, markers[0].Y, 1e-9)

	// Gecikmeler kademeli: i * 150ms.
	assert.Equal(t, 0, markers[0].DelayMilli)
	assert.Equal(t, 150, markers[1].DelayMilli)
	assert.Equal(t, 450, markers[3].DelayMilli)
}

func TestLikeMarkers_Empty(t *testing.T) {
	assert.Nil(t, LikeMarkers(0))
	assert.Nil(t, LikeMarkers(-3))
}
