package extension

// InstallStatus is the coarse installation progress reported to the
// host UI while a language-server binary is being located or fetched.
type InstallStatus int

const (
	// StatusNone means idle: nothing in progress, or resolution done.
	StatusNone InstallStatus = iota
	// StatusCheckingForUpdate means the resolver is probing for an
	// existing binary.
	StatusCheckingForUpdate
	// StatusDownloading means a release asset is being fetched.
	StatusDownloading
)

// String returns the string representation of the status.
func (s InstallStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusCheckingForUpdate:
		return "checking-for-update"
	case StatusDownloading:
		return "downloading"
	default:
		return "unknown"
	}
}

// StatusReporter receives installation status transitions. Hosts plug
// in their own implementation; the default discards everything.
//
// The resolver reports status only on the download path, and never on
// error paths: a failed attempt leaves the sink at its last value and
// surfaces the error to the caller instead.
type StatusReporter interface {
	SetInstallationStatus(serverID string, status InstallStatus)
}

// nopStatusReporter is the default StatusReporter.
type nopStatusReporter struct{}

func (nopStatusReporter) SetInstallationStatus(string, InstallStatus) {}
