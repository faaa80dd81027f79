// Command rfbserver-demo hosts the rfb package's core over a real TCP
// listener. It owns everything the core deliberately doesn't: socket
// acquisition, CLI flags, and a trivial framebuffer provider that paints
// one solid color per connection and repaints on every
// FramebufferUpdateRequest.
package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/blackfin-systems/rfbserver"
	"github.com/blackfin-systems/rfbserver/logger"
)

func main() {
	addr := flag.String("addr", ":5900", "listen address")
	width := flag.Uint("width", 1024, "framebuffer width")
	height := flag.Uint("height", 768, "framebuffer height")
	name := flag.String("name", "rfbserver-demo", "desktop name advertised to clients")
	password := flag.String("password", "", "VNC-auth password; empty means no authentication")
	flag.Parse()

	var security rfb.Security = rfb.SecurityNone{}
	if *password != "" {
		security = rfb.SecurityVNCAuth{Password: []byte(*password)}
	}

	cfg := rfb.Config{
		Width:       uint16(*width),
		Height:      uint16(*height),
		DesktopName: []byte(*name),
		PixelFormat: rfb.BGRX8888,
		Security:    security,
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatalf("listen on %s: %v", *addr, err)
	}
	logger.Infof("rfb server listening on %s", *addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			fmt.Fprintf(os.Stderr, "accept: %v\n", err)
			continue
		}
		go serve(conn, cfg)
	}
}

func serve(conn net.Conn, cfg rfb.Config) {
	defer conn.Close()
	logger.Infof("client connected: %s", conn.RemoteAddr())

	session, err := rfb.Handshake(conn, cfg)
	if err != nil {
		logger.Errorf("handshake with %s failed: %v", conn.RemoteAddr(), err)
		return
	}
	defer session.Close()

	fill := rfb.Color{R: 0.2, G: 0.4, B: 0.8}

	for {
		event, err := session.WaitEvent()
		if err == io.EOF {
			logger.Infof("client disconnected: %s", conn.RemoteAddr())
			return
		}
		if err != nil {
			logger.Errorf("session with %s ended: %v", conn.RemoteAddr(), err)
			return
		}

		switch ev := event.(type) {
		case rfb.FramebufferUpdateRequestEvent:
			rect, err := paintRectangle(session.PixelFormat(), ev, fill)
			if err != nil {
				logger.Errorf("painting update for %s: %v", conn.RemoteAddr(), err)
				return
			}
			if err := session.SendFramebufferUpdate([]rfb.UpdateRectangle{rect}); err != nil {
				logger.Errorf("sending update to %s: %v", conn.RemoteAddr(), err)
				return
			}
		case rfb.SetPixelFormatEvent:
			logger.Debugf("%s set pixel format: %s", conn.RemoteAddr(), ev.PixelFormat)
		case rfb.SetEncodingsEvent:
			logger.Debugf("%s offered %d encodings", conn.RemoteAddr(), len(ev.Encodings))
		case rfb.KeyEvent:
			logger.Debugf("%s key %#x down=%v", conn.RemoteAddr(), uint32(ev.Key), ev.Down)
		case rfb.PointerEvent:
			logger.Debugf("%s pointer (%d,%d) mask=%#x", conn.RemoteAddr(), ev.X, ev.Y, ev.ButtonMask)
		case rfb.ClientCutTextEvent:
			logger.Debugf("%s cut text: %q", conn.RemoteAddr(), ev.Text)
		}
	}
}

// paintRectangle encodes fill as a raw-encoded rectangle covering the
// region ev requested. A real framebuffer provider would sample actual
// screen content here instead.
func paintRectangle(pf rfb.PixelFormat, ev rfb.FramebufferUpdateRequestEvent, fill rfb.Color) (rfb.UpdateRectangle, error) {
	pixel, err := pf.Encode(fill)
	if err != nil {
		return rfb.UpdateRectangle{}, err
	}
	if len(pixel) == 0 {
		return rfb.UpdateRectangle{}, fmt.Errorf("pixel format %s has no raw encoding width", pf)
	}

	data := make([]byte, int(ev.Width)*int(ev.Height)*len(pixel))
	for i := 0; i < len(data); i += len(pixel) {
		copy(data[i:i+len(pixel)], pixel)
	}

	return rfb.UpdateRectangle{
		X:        ev.X,
		Y:        ev.Y,
		Width:    ev.Width,
		Height:   ev.Height,
		Encoding: rfb.EncRaw,
		Data:     data,
	}, nil
}
