package config

// Region is the binary choice between API deployments.
type Region string

const (
	RegionInternational Region = "international"
	RegionMainland      Region = "mainland"
)

// Endpoints is a matched pair of base URLs for one region. The two URLs are
// always derived together; setting them independently could leave them
// pointing at different regions.
type Endpoints struct {
	Compatible string // OpenAI-compatible mode
	Native     string // native DashScope protocol
}

// EndpointsFor returns the endpoint pair for a region. Unrecognized regions
// map to mainland, matching the negative branch of the region prompt.
func EndpointsFor(r Region) Endpoints {
	if r == RegionInternational {
		return Endpoints{
			Compatible: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
			Native:     "https://dashscope-intl.aliyuncs.com/api/v1",
		}
	}
	return Endpoints{
		Compatible: "https://dashscope.aliyuncs.com/compatible-mode/v1",
		Native:     "https://dashscope.aliyuncs.com/api/v1",
	}
}
