// Package feature derives fixed-order numeric feature vectors from network
// events, using a bounded rolling history for windowed statistics. The schema
// reproduces the 41-field KDD-style layout the bundled classifier models are
// trained against.
package feature

import "NetSentry/internal/model"

// SchemaVersion identifies the feature contract. The field order of Vector
// and the code tables below must match the schema the classifier artifact was
// trained against; changing either without retraining breaks classification
// silently.
const SchemaVersion = 1

// FieldCount is the number of numeric fields in a Vector.
const FieldCount = 41

// Vector is one feature row in schema order. Fields the extractor cannot
// derive from address/port/protocol statistics (login and shell indicators,
// error rates) stay at their zero values.
type Vector struct {
	Duration               float64
	ProtocolType           float64
	Service                float64
	Flag                   float64
	SrcBytes               float64
	DstBytes               float64
	Land                   float64
	WrongFragment          float64
	Urgent                 float64
	Hot                    float64
	NumFailedLogins        float64
	LoggedIn               float64
	NumCompromised         float64
	RootShell              float64
	SuAttempted            float64
	NumRoot                float64
	NumFileCreations       float64
	NumShells              float64
	NumAccessFiles         float64
	NumOutboundCmds        float64
	IsHostLogin            float64
	IsGuestLogin           float64
	Count                  float64
	SrvCount               float64
	SerrorRate             float64
	SrvSerrorRate          float64
	RerrorRate             float64
	SrvRerrorRate          float64
	SameSrvRate            float64
	DiffSrvRate            float64
	SrvDiffHostRate        float64
	DstHostCount           float64
	DstHostSrvCount        float64
	DstHostSameSrvRate     float64
	DstHostDiffSrvRate     float64
	DstHostSameSrcPortRate float64
	DstHostSrvDiffHostRate float64
	DstHostSerrorRate      float64
	DstHostSrvSerrorRate   float64
	DstHostRerrorRate      float64
	DstHostSrvRerrorRate   float64
}

// ToSlice flattens the vector into the positional form the classifier
// consumes. Index i corresponds to Names()[i].
func (v Vector) ToSlice() []float64 {
	return []float64{
		v.Duration,
		v.ProtocolType,
		v.Service,
		v.Flag,
		v.SrcBytes,
		v.DstBytes,
		v.Land,
		v.WrongFragment,
		v.Urgent,
		v.Hot,
		v.NumFailedLogins,
		v.LoggedIn,
		v.NumCompromised,
		v.RootShell,
		v.SuAttempted,
		v.NumRoot,
		v.NumFileCreations,
		v.NumShells,
		v.NumAccessFiles,
		v.NumOutboundCmds,
		v.IsHostLogin,
		v.IsGuestLogin,
		v.Count,
		v.SrvCount,
		v.SerrorRate,
		v.SrvSerrorRate,
		v.RerrorRate,
		v.SrvRerrorRate,
		v.SameSrvRate,
		v.DiffSrvRate,
		v.SrvDiffHostRate,
		v.DstHostCount,
		v.DstHostSrvCount,
		v.DstHostSameSrvRate,
		v.DstHostDiffSrvRate,
		v.DstHostSameSrcPortRate,
		v.DstHostSrvDiffHostRate,
		v.DstHostSerrorRate,
		v.DstHostSrvSerrorRate,
		v.DstHostRerrorRate,
		v.DstHostSrvRerrorRate,
	}
}

var fieldNames = [FieldCount]string{
	"duration",
	"protocol_type",
	"service",
	"flag",
	"src_bytes",
	"dst_bytes",
	"land",
	"wrong_fragment",
	"urgent",
	"hot",
	"num_failed_logins",
	"logged_in",
	"num_compromised",
	"root_shell",
	"su_attempted",
	"num_root",
	"num_file_creations",
	"num_shells",
	"num_access_files",
	"num_outbound_cmds",
	"is_host_login",
	"is_guest_login",
	"count",
	"srv_count",
	"serror_rate",
	"srv_serror_rate",
	"rerror_rate",
	"srv_rerror_rate",
	"same_srv_rate",
	"diff_srv_rate",
	"srv_diff_host_rate",
	"dst_host_count",
	"dst_host_srv_count",
	"dst_host_same_srv_rate",
	"dst_host_diff_srv_rate",
	"dst_host_same_src_port_rate",
	"dst_host_srv_diff_host_rate",
	"dst_host_serror_rate",
	"dst_host_srv_serror_rate",
	"dst_host_rerror_rate",
	"dst_host_srv_rerror_rate",
}

// Names returns the canonical field names in vector order.
func Names() []string {
	names := fieldNames
	return names[:]
}

var servicesByPort = map[uint16]string{
	20:   "ftp_data",
	21:   "ftp",
	22:   "ssh",
	23:   "telnet",
	25:   "smtp",
	53:   "domain",
	80:   "http",
	110:  "pop_3",
	135:  "loc-srv",
	139:  "netbios-ssn",
	143:  "imap4",
	161:  "snmp",
	443:  "https",
	445:  "microsoft-ds",
	993:  "imap4",
	995:  "pop_3s",
	1433: "ms-sql-s",
	3389: "ms-wbt-server",
}

// ServiceName maps an event's destination port to the well-known service
// name used in feature derivation and alert records. Ports outside the table
// and portless protocols map to "other".
func ServiceName(event *model.NetworkEvent) string {
	if event.Protocol != model.ProtocolTCP && event.Protocol != model.ProtocolUDP {
		return "other"
	}
	if name, ok := servicesByPort[event.DstPort]; ok {
		return name
	}
	return "other"
}

// FlagName derives the connection-state flag from the TCP control bits: S0
// for a bare SYN, S1 for SYN+ACK, REJ for RST, SF otherwise. Non-TCP events
// are OTH.
func FlagName(event *model.NetworkEvent) string {
	if event.Protocol != model.ProtocolTCP {
		return "OTH"
	}
	flags := event.TCPFlags
	switch {
	case flags&model.TCPSyn != 0 && flags&model.TCPAck == 0:
		return "S0"
	case flags&model.TCPSyn != 0:
		return "S1"
	case flags&model.TCPFin != 0:
		return "SF"
	case flags&model.TCPRst != 0:
		return "REJ"
	default:
		return "SF"
	}
}

var protocolCodes = map[model.Protocol]float64{
	model.ProtocolTCP:   0,
	model.ProtocolUDP:   1,
	model.ProtocolICMP:  2,
	model.ProtocolOther: 3,
}

var serviceCodes = map[string]float64{
	"other": 0,
	"http":  1,
	"https": 2,
	"ftp":   3,
	"ssh":   4,
}

var flagCodes = map[string]float64{
	"SF":   0,
	"S0":   1,
	"REJ":  2,
	"RSTR": 3,
	"OTH":  4,
}

func protocolCode(p model.Protocol) float64 {
	if code, ok := protocolCodes[p]; ok {
		return code
	}
	return protocolCodes[model.ProtocolOther]
}

// serviceCode folds service names outside the trained vocabulary to 0.
func serviceCode(name string) float64 {
	return serviceCodes[name]
}

// flagCode folds flag names outside the trained vocabulary (S1 included) to
// the OTH code.
func flagCode(name string) float64 {
	if code, ok := flagCodes[name]; ok {
		return code
	}
	return flagCodes["OTH"]
}
