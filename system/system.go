package system

import (
	"fmt"

	"github.com/zcalusic/sysinfo"
)

type LocalSystem struct {
	Vendor  string
	Version string
	Arch    string
	Kernel  string
}

var sysInfo = func() sysinfo.SysInfo {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return si
}

func GetLocalSystem() (*LocalSystem, error) {
	si := sysInfo()

	if si.OS.Architecture == "" {
		return nil, fmt.Errorf("unable to detect host architecture")
	}

	return &LocalSystem{
		Vendor:  si.OS.Vendor,
		Version: si.OS.Version,
		Arch:    si.OS.Architecture,
		Kernel:  si.Kernel.Release,
	}, nil
}

// HostTriple returns the Rust target triple rustup uses for this host, or ""
// for architectures rustup does not ship linux-gnu toolchains for.
func (l *LocalSystem) HostTriple() string {
	switch l.Arch {
	case "amd64", "x86_64":
		return "x86_64-unknown-linux-gnu"
	case "arm64", "aarch64":
		return "aarch64-unknown-linux-gnu"
	case "386", "i386", "i686":
		return "i686-unknown-linux-gnu"
	default:
		return ""
	}
}

func (l *LocalSystem) String() string {
	name := l.Vendor
	if name == "" {
		name = "unknown"
	}
	if l.Version != "" {
		name += " " + l.Version
	}
	return name + " (" + l.Arch + ")"
}
