package naiapi

const DefaultSampler = "k_euler_ancestral"

// sampler ids accepted by the generate-image endpoint
var Samplers = []string{
	"k_euler",
	"k_euler_ancestral",
	"k_dpmpp_2s_ancestral",
	"k_dpmpp_sde",
	"ddim_v3",
}

func IsValidSampler(name string) bool {
	for _, sampler := range Samplers {
		if sampler == name {
			return true
		}
	}
	return false
}
