// Package uihelpers holds pure view-space geometry used by the viewer.
// Keeping it free of UI dependencies makes the mapping math testable.
package uihelpers

// ComputeChartDimensions applies width/height clamp rules for the figure.
// Input: desired raw width (e.g., canvas width). Returns clamped width and
// height keeping roughly the 7:5 aspect of the figure.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	if w > 1400 {
		w = 1400
	}
	h := int(float32(w) * 0.72)
	if h < 460 {
		h = 460
	}
	if h > 900 {
		h = 900
	}
	return w, h
}

// ComputeContainRect returns the sub-rectangle an imgW×imgH image occupies
// when displayed with contain scaling inside a viewW×viewH view, plus the
// applied scale factor.
func ComputeContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return
}

// ViewToImage maps view-space coordinates into image pixel coordinates.
// ok is false when the point lies outside the drawn image rectangle, which
// callers must treat as "no valid coordinate".
func ViewToImage(x, y, imgW, imgH, viewW, viewH float32) (px, py float32, ok bool) {
	drawX, drawY, drawW, drawH, scale := ComputeContainRect(imgW, imgH, viewW, viewH)
	if scale <= 0 {
		return 0, 0, false
	}
	if x < drawX || x > drawX+drawW || y < drawY || y > drawY+drawH {
		return 0, 0, false
	}
	return (x - drawX) / scale, (y - drawY) / scale, true
}
