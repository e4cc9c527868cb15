// Package demo provides the mock data served by the UI: agent catalog, organizations
// and cluster metrics.
package demo

// Agent describes an agent shown in the catalog
type Agent struct {
	Namespace   string   `json:"namespace"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Model       string   `json:"model"`
	Tools       []string `json:"tools"`
}

// Ref returns "namespace/name"
func (a Agent) Ref() string {
	return a.Namespace + "/" + a.Name
}

// IsMultiAgent reports whether the agent is the multi-agent coordinator, rendered with a
// dedicated chat variant
func IsMultiAgent(namespace, name string) bool {
	return namespace == "kagent" && name == "multiagent"
}

// Agents returns the fixed agent catalog
func Agents() []Agent {
	return []Agent{
		{
			Namespace:   "kagent",
			Name:        "k8s-agent",
			Description: "Troubleshoots and operates Kubernetes workloads",
			Model:       "gpt-4o",
			Tools:       []string{"k8s_get_resources", "k8s_describe_resource", "k8s_get_pod_logs"},
		},
		{
			Namespace:   "kagent",
			Name:        "helm-agent",
			Description: "Installs, upgrades and inspects Helm releases",
			Model:       "gpt-4o",
			Tools:       []string{"helm_list_releases", "helm_get_release", "helm_upgrade"},
		},
		{
			Namespace:   "kagent",
			Name:        "istio-agent",
			Description: "Manages Istio service mesh configuration",
			Model:       "gpt-4o-mini",
			Tools:       []string{"istio_proxy_status", "istio_analyze", "k8s_apply_manifest"},
		},
		{
			Namespace:   "kagent",
			Name:        "observability-agent",
			Description: "Queries Prometheus and builds Grafana dashboards",
			Model:       "claude-3-5-sonnet",
			Tools:       []string{"prometheus_query", "grafana_create_dashboard"},
		},
		{
			Namespace:   "kagent",
			Name:        "multiagent",
			Description: "Coordinates specialist agents to solve multi-step tasks",
			Model:       "gpt-4o",
			Tools:       []string{"k8s-agent", "helm-agent", "istio-agent", "observability-agent"},
		},
		{
			Namespace:   "platform",
			Name:        "docs-agent",
			Description: "Answers questions from the platform documentation",
			Model:       "gpt-4o-mini",
			Tools:       []string{"docs_search"},
		},
	}
}

// FindAgent looks up an agent by namespace and name
func FindAgent(namespace, name string) (Agent, bool) {
	for _, a := range Agents() {
		if a.Namespace == namespace && a.Name == name {
			return a, true
		}
	}
	return Agent{}, false
}
