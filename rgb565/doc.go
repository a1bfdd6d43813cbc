// Package rgb565 provides the 16-bit RGB-565 pixel format used by the ST7735 display controller.
//
// Each pixel is 5 bits red, 6 bits green and 5 bits blue packed into a
// uint16. In memory the two bytes are stored low byte first:
//
//	Color:  0xABCD
//	Bytes:  0xCD 0xAB
//
// This package provides:
//
// - Color: a color.Color holding an RGB-565 value, plus common named colors
// - Model: a color model converting standard Go colors to Color
// - Image: a draw.Image whose Pix slice can be streamed to the panel as is
//
// Example usage:
//
//	img := rgb565.NewImage(image.Rect(0, 0, 128, 160))
//	img.SetRGB565(10, 20, rgb565.Red)
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.Blue), image.Point{}, draw.Src)
package rgb565
