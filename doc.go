// Package st7735 controls a ST7735 TFT LCD display via SPI.
//
// The ST7735 is a 262K-color TFT controller with 132×162 pixels of display
// RAM. The common 1.8" module shows a 128×160 window of that RAM. This driver
// runs the panel in 16-bit RGB-565 mode and implements the display.Drawer
// interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit color, 5 bits red, 6 bits green, 5 bits blue
// - 128×160 visible pixels (configurable for 128×128 and 80×160 modules)
// - Visible area offset inside controller RAM (2 columns, 1 row by default)
// - Display inversion
// - Built-in 5×7 text font on a 21×16 character grid
//
// # Hardware Connection
//
// Connect the ST7735 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	A0/DC       → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RESET       → Optional: GPIO for hardware reset
//	LED         → Optional: GPIO for backlight
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/st7735"
//		"periph.io/x/devices/v3/st7735/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		port, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer port.Close()
//
//		opts := st7735.DefaultOpts()
//		opts.RST = gpioreg.ByName("GPIO24")
//		opts.Backlight = gpioreg.ByName("GPIO18")
//		dev, err := st7735.NewSPI(port, gpioreg.ByName("GPIO25"), opts)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.FillScreen(rgb565.Black)
//		dev.FillRect(10, 10, 40, 20, rgb565.Red)
//		dev.DrawString(0, 4, "Hello, world", rgb565.White, rgb565.Black, 1)
//	}
//
// The driver performs a hardware reset (RST low 500ms, high 500ms) when RST
// is set, then sends the power-on sequence and turns the backlight on.
//
// # Drawing
//
// FillScreen, FillRect and DrawPixel each select an address window and
// stream pixels into it. Rectangles overflowing the right or bottom edge are
// shrunk; anything starting off the panel is dropped.
//
// Draw converts any image.Image to RGB-565. A full-frame *rgb565.Image is
// sent without conversion:
//
//	img := rgb565.NewImage(dev.Bounds())
//	// ... draw into img ...
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Text
//
// DrawChar renders one glyph of the built-in 5×7 font at any pixel
// position, scaled by an integer size. DrawString places text on a grid of
// 6×8 pixel cells:
//
//	dev.DrawString(col, row, "text", rgb565.Yellow, rgb565.Black, 1)
//
// When fg and bg are equal the background is left untouched.
//
// Fonts from tinygo.org/x/tinyfont render through WriteLine:
//
//	dev.WriteLine(&proggy.TinySZ8pt7b, 0, 20, "Hello", color.RGBA{G: 255, A: 255})
//
// # Module Variants
//
// Boards differ in where the glass sits in controller RAM:
//
//	Opts{W: 128, H: 160, OffsetX: 2, OffsetY: 1}  // 1.8" 128×160
//	Opts{W: 128, H: 128, OffsetX: 2, OffsetY: 3}  // 1.44" 128×128
//	Opts{W: 80, H: 160, OffsetX: 26, OffsetY: 1}  // 0.96" 80×160
//
// # Testing Without Hardware
//
// New accepts any Transport. The panelsim package provides one that decodes
// the command stream into an image.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ST7735.pdf
package st7735
