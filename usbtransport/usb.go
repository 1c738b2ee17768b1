// Package usbtransport implements link.PacketSink and link.PacketSource on
// top of a real USB bulk endpoint pair. Unlike USBTMC, there is no
// device-specific header: a write is a WireWeaver packet, and a read
// returns exactly one WireWeaver packet, relying on USB's own bulk-transfer
// boundaries to preserve "one write = one read" framing.
package usbtransport

import (
	"context"
	"fmt"

	"github.com/google/gousb"
)

// Device wraps a gousb bulk IN/OUT endpoint pair as a link.PacketSink and
// link.PacketSource.
type Device struct {
	ctx    *gousb.Context
	device *gousb.Device
	iface  *gousb.Interface
	in     *gousb.InEndpoint
	out    *gousb.OutEndpoint
	closer func()
}

// Open finds the device by vendor/product ID, claims its default interface,
// and looks up the given endpoint numbers for bulk transfer.
func Open(vid, pid uint16, inEndpoint, outEndpoint int) (*Device, error) {
	d := &Device{ctx: gousb.NewContext()}

	dev, err := d.ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		d.ctx.Close()
		return nil, err
	}
	if dev == nil {
		d.ctx.Close()
		return nil, fmt.Errorf("usbtransport: no device matching vid=%#x pid=%#x", vid, pid)
	}
	d.device = dev

	if err := d.device.SetAutoDetach(true); err != nil {
		d.Close()
		return nil, err
	}

	iface, closer, err := d.device.DefaultInterface()
	if err != nil {
		d.Close()
		return nil, err
	}
	d.iface = iface
	d.closer = closer

	d.in, err = d.iface.InEndpoint(inEndpoint)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.out, err = d.iface.OutEndpoint(outEndpoint)
	if err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// WritePacket sends pkt as a single bulk OUT transfer. gousb's endpoint
// Write blocks without honoring ctx directly, so a canceled ctx only
// short-circuits before the transfer starts; an in-flight transfer still
// runs to completion or to the endpoint's own timeout.
func (d *Device) WritePacket(ctx context.Context, pkt []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := d.out.Write(pkt)
	if err != nil {
		return err
	}
	if n != len(pkt) {
		return fmt.Errorf("usbtransport: short write: wrote %d of %d bytes", n, len(pkt))
	}
	return nil
}

// ReadPacket reads one bulk IN transfer into buf.
func (d *Device) ReadPacket(ctx context.Context, buf []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return d.in.Read(buf)
}

// PacketCapacity reports the IN endpoint's maximum packet size.
func (d *Device) PacketCapacity() int {
	return d.in.Desc.MaxPacketSize
}

// Close releases the interface and the underlying USB context.
func (d *Device) Close() error {
	if d.closer != nil {
		d.closer()
	}
	var err error
	if d.device != nil {
		err = d.device.Close()
	}
	if d.ctx != nil {
		d.ctx.Close()
	}
	return err
}
