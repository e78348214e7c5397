package exporters

// Target describes a supported export target.
type Target struct {
	// ID is the exporter's tag in the project document.
	ID string
	// Name is the human-readable name Reprojucer expects.
	Name string
	// DefaultVST3Folder is used when the exporter sets no vst3Folder.
	DefaultVST3Folder string
}

// Targets is the canonical table of supported export targets.
var Targets = [...]Target{
	{ID: "XCODE_MAC", Name: "Xcode (MacOSX)", DefaultVST3Folder: "~/SDKs/VST_SDK/VST3_SDK"},
	{ID: "VS2015", Name: "Visual Studio 2015", DefaultVST3Folder: `c:\SDKs\VST_SDK\VST3_SDK`},
	{ID: "VS2013", Name: "Visual Studio 2013", DefaultVST3Folder: `c:\SDKs\VST_SDK\VST3_SDK`},
}

// XcodeMac is the only target with macOS SDK selectors.
const XcodeMac = "XCODE_MAC"

// SDKVersions lists the macOS SDK selector values, oldest first.
var SDKVersions = [...]string{
	"10.5 SDK",
	"10.6 SDK",
	"10.7 SDK",
	"10.8 SDK",
	"10.9 SDK",
	"10.10 SDK",
	"10.11 SDK",
	"10.12 SDK",
}

const (
	sdkDefault    = "default"
	sdkUseDefault = "Use Default"
	sdkSuffix     = " SDK"
)

// Lookup returns the table entry for id.
func Lookup(id string) (Target, bool) {
	for _, t := range Targets {
		if t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

func knownSDK(v string) bool {
	for _, s := range SDKVersions {
		if s == v {
			return true
		}
	}
	return false
}
