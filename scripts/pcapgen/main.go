// Generates a synthetic capture that mixes benign client sessions with the
// attack bursts the bundled models are trained to flag. The output feeds the
// pcap replay source for end-to-end detection runs.
package main

import (
	"flag"
	"log"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

var (
	srcMAC = net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	dstMAC = net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA}
)

func main() {
	outputFile := flag.String("o", "traffic.pcap", "Output pcap file path")
	sessions := flag.Int("sessions", 200, "Number of benign sessions to generate")
	attacks := flag.Int("attacks", 10, "Number of attack bursts to interleave")
	seed := flag.Int64("seed", 0, "RNG seed (0 seeds from the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	pcapWriter := pcapgo.NewWriter(f)
	if err := pcapWriter.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		log.Fatalf("Failed to write pcap header: %v", err)
	}

	g := &generator{
		w:   pcapWriter,
		rng: rand.New(rand.NewSource(*seed)),
		ts:  time.Now().Add(-time.Hour),
	}

	log.Printf("Generating %d benign sessions and %d attack bursts into %s...", *sessions, *attacks, *outputFile)

	attackEvery := 0
	if *attacks > 0 {
		attackEvery = *sessions / *attacks
		if attackEvery == 0 {
			attackEvery = 1
		}
	}

	for i := 0; i < *sessions; i++ {
		g.benignSession()
		if attackEvery > 0 && (i+1)%attackEvery == 0 {
			g.attackBurst()
		}
	}

	log.Printf("Successfully wrote %d packets into %s.", g.count, *outputFile)
}

type generator struct {
	w     *pcapgo.Writer
	rng   *rand.Rand
	ts    time.Time
	count int
}

// writePacket serializes the given layers and appends them to the capture,
// advancing the synthetic clock a few milliseconds per packet.
func (g *generator) writePacket(l ...gopacket.SerializableLayer) {
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{
		ComputeChecksums: true,
		FixLengths:       true,
	}
	if err := gopacket.SerializeLayers(buf, opts, l...); err != nil {
		log.Fatalf("Failed to serialize layers: %v", err)
	}

	g.ts = g.ts.Add(time.Duration(g.rng.Intn(4)+1) * time.Millisecond)
	ci := gopacket.CaptureInfo{
		Timestamp:     g.ts,
		CaptureLength: len(buf.Bytes()),
		Length:        len(buf.Bytes()),
	}
	if err := g.w.WritePacket(ci, buf.Bytes()); err != nil {
		log.Fatalf("Failed to write packet: %v", err)
	}
	g.count++
}

func ethernet() *layers.Ethernet {
	return &layers.Ethernet{
		SrcMAC:       srcMAC,
		DstMAC:       dstMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
}

func (g *generator) clientAddr() net.IP {
	return net.IPv4(192, 168, 1, byte(g.rng.Intn(253)+2))
}

func (g *generator) serverAddr() net.IP {
	return net.IPv4(10, 0, 0, byte(g.rng.Intn(5)+1))
}

func (g *generator) attackerAddr() net.IP {
	return net.IPv4(203, 0, 113, byte(g.rng.Intn(253)+2))
}

func (g *generator) ephemeralPort() layers.TCPPort {
	return layers.TCPPort(g.rng.Intn(28232) + 32768)
}

func (g *generator) writeTCP(src, dst net.IP, sport, dport layers.TCPPort, fin, syn, ack, psh bool, payload []byte) {
	ip := &layers.IPv4{
		SrcIP:    src,
		DstIP:    dst,
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
	}
	tcp := &layers.TCP{
		SrcPort: sport,
		DstPort: dport,
		Seq:     g.rng.Uint32(),
		FIN:     fin,
		SYN:     syn,
		ACK:     ack,
		PSH:     psh,
		Window:  14600,
	}
	if ack {
		tcp.Ack = g.rng.Uint32()
	}
	tcp.SetNetworkLayerForChecksum(ip)
	g.writePacket(ethernet(), ip, tcp, gopacket.Payload(payload))
}

func (g *generator) writeICMP(src, dst net.IP, echoRequest bool, payloadSize int) {
	ip := &layers.IPv4{
		SrcIP:    src,
		DstIP:    dst,
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolICMPv4,
	}
	icmpType := uint8(layers.ICMPv4TypeEchoRequest)
	if !echoRequest {
		icmpType = layers.ICMPv4TypeEchoReply
	}
	icmp := &layers.ICMPv4{
		TypeCode: layers.CreateICMPv4TypeCode(icmpType, 0),
		Id:       uint16(g.rng.Intn(65536)),
		Seq:      uint16(g.rng.Intn(65536)),
	}
	payload := make([]byte, payloadSize)
	g.rng.Read(payload)
	g.writePacket(ethernet(), ip, icmp, gopacket.Payload(payload))
}

// benignSession emits one short client/server exchange: a handshake, a data
// push, and a close on a well-known service port. DNS sessions use UDP.
func (g *generator) benignSession() {
	client := g.clientAddr()
	server := g.serverAddr()
	sport := g.ephemeralPort()

	servicePorts := []layers.TCPPort{80, 443, 22, 25, 53}
	dport := servicePorts[g.rng.Intn(len(servicePorts))]

	if dport == 53 {
		ip := &layers.IPv4{SrcIP: client, DstIP: server, Version: 4, TTL: 64, Protocol: layers.IPProtocolUDP}
		udp := &layers.UDP{SrcPort: layers.UDPPort(sport), DstPort: 53}
		udp.SetNetworkLayerForChecksum(ip)
		query := make([]byte, g.rng.Intn(48)+16)
		g.rng.Read(query)
		g.writePacket(ethernet(), ip, udp, gopacket.Payload(query))
		return
	}

	payload := make([]byte, g.rng.Intn(1200)+100)
	g.rng.Read(payload)

	g.writeTCP(client, server, sport, dport, false, true, false, false, nil)    // SYN
	g.writeTCP(server, client, dport, sport, false, true, true, false, nil)     // SYN+ACK
	g.writeTCP(client, server, sport, dport, false, false, true, true, payload) // data
	g.writeTCP(client, server, sport, dport, true, false, true, false, nil)     // FIN
}

// attackBurst emits one randomly chosen attack pattern.
func (g *generator) attackBurst() {
	switch g.rng.Intn(5) {
	case 0:
		g.synFlood()
	case 1:
		g.portSweep()
	case 2:
		g.addressSweep()
	case 3:
		g.smurfBurst()
	case 4:
		g.landPacket()
	}
}

// synFlood sends a burst of bare SYNs from one source to one web server.
func (g *generator) synFlood() {
	attacker := g.attackerAddr()
	victim := g.serverAddr()
	for i := 0; i < g.rng.Intn(20)+25; i++ {
		g.writeTCP(attacker, victim, g.ephemeralPort(), 80, false, true, false, false, nil)
	}
}

// portSweep probes one host across low ports.
func (g *generator) portSweep() {
	attacker := g.attackerAddr()
	victim := g.serverAddr()
	for i := 0; i < 30; i++ {
		dport := layers.TCPPort(g.rng.Intn(1024) + 1)
		g.writeTCP(attacker, victim, g.ephemeralPort(), dport, false, true, false, false, nil)
	}
}

// addressSweep pings one address after another looking for live hosts.
func (g *generator) addressSweep() {
	attacker := g.attackerAddr()
	for i := 0; i < 25; i++ {
		g.writeICMP(attacker, net.IPv4(10, 0, 0, byte(i+1)), true, 56)
	}
}

// smurfBurst floods one victim with large echo replies from many sources.
func (g *generator) smurfBurst() {
	victim := g.serverAddr()
	for i := 0; i < 30; i++ {
		src := net.IPv4(198, 51, 100, byte(g.rng.Intn(253)+2))
		g.writeICMP(src, victim, false, 1024)
	}
}

// landPacket sends the classic source-equals-destination SYN.
func (g *generator) landPacket() {
	victim := g.serverAddr()
	g.writeTCP(victim, victim, 80, 80, false, true, false, false, nil)
}
