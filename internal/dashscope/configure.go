package dashscope

// Configurator holds the credential and base URL for the native DashScope
// protocol, the counterpart of the SDK's package-level api_key/base settings.
// It implements the resolver's NativeConfigurator interface.
type Configurator struct {
	apiKey  string
	baseURL string
}

// Native is the process-wide native-protocol configuration, filled in by the
// resolver after a complete resolution pass.
var Native = &Configurator{}

// Configure records the credential and the native-protocol base URL.
func (c *Configurator) Configure(apiKey, nativeBaseURL string) {
	c.apiKey = apiKey
	c.baseURL = nativeBaseURL
}

// APIKey returns the configured credential, or empty if unconfigured.
func (c *Configurator) APIKey() string { return c.apiKey }

// BaseURL returns the native-protocol base URL, or empty if unconfigured.
func (c *Configurator) BaseURL() string { return c.baseURL }

// Configured reports whether Configure has been called with both values.
func (c *Configurator) Configured() bool {
	return c.apiKey != "" && c.baseURL != ""
}
