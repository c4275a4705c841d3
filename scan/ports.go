package scan

type PortState uint8

const (
	PortUnknown PortState = iota //零值,探测不会返回
	PortOpen
	PortClosed
	PortFiltered
)

func (s PortState) String() string {
	switch s {
	case PortOpen:
		return "open"
	case PortClosed:
		return "closed"
	case PortFiltered:
		return "filtered"
	}
	return "unknown"
}

func DescribePort(port uint16) string { //返回端口的描述
	if s, ok := knownPorts[port]; ok {
		return s
	}

	return ""
}
