// Copyright 2025 SA Demo Suite Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roi

// Catalog returns the five industry scenarios. The slice and everything in
// it are load-time constants; callers must not mutate them. Incumbent
// alternatives (DefaultAlt) carry empty impact maps and zero savings: they
// describe what the customer already runs, so selecting one leaves every
// metric at baseline.
func Catalog() []Scenario {
	return scenarios
}

// ScenarioByID returns the scenario with the given id, or nil.
func ScenarioByID(id string) *Scenario {
	for i := range scenarios {
		if scenarios[i].ID == id {
			return &scenarios[i]
		}
	}
	return nil
}

// Deployments returns the three fixed deployment configurations.
func Deployments() []DeploymentConfig {
	return deployments
}

// DeploymentByMode returns the deployment configuration for a mode, or nil.
func DeploymentByMode(mode DeploymentMode) *DeploymentConfig {
	for i := range deployments {
		if deployments[i].Mode == mode {
			return &deployments[i]
		}
	}
	return nil
}

var deployments = []DeploymentConfig{
	{
		Mode:  CloudAPI,
		Label: "Cloud API (hosted NIM)",
	},
	{
		Mode:                 CloudGPU,
		Label:                "Cloud GPU rental",
		OpexPerGPUPerMonth:   2800,
		GPUsRequired:         8,
		LicensePerGPUPerYear: 4500,
		SelfHosted:           true,
	},
	{
		Mode:                 OnPrem,
		Label:                "On-prem DGX",
		CapexPerGPU:          30000,
		OpexPerGPUPerMonth:   350,
		GPUsRequired:         8,
		LicensePerGPUPerYear: 4500,
		SelfHosted:           true,
		DataResidency:        true,
	},
}

var scenarios = []Scenario{
	{
		ID:       "healthcare",
		Title:    "Patient Triage Agent",
		Industry: "Healthcare",
		ProblemStatement: "Your hospital's AI triage agent responds in 8.5s, costs $15 per 1K requests, " +
			"hallucinates unsafe diagnoses (45% safety), and only triages 120 patients/hour. " +
			"Apply NVIDIA solutions to meet enterprise healthcare SLAs.",
		BaseAnnualCost: 540000,
		Metrics: []Metric{
			{Key: "latency", Label: "Avg Latency", Unit: "s", Baseline: 8.5, Target: 2.0},
			{Key: "cost", Label: "Cost / 1K Reqs", Unit: "$", Baseline: 15.0, Target: 5.0},
			{Key: "safety", Label: "Safety Score", Unit: "%", Baseline: 45, Target: 95, HigherIsBetter: true},
			{Key: "throughput", Label: "Patients / Hour", Unit: "", Baseline: 120, Target: 500, HigherIsBetter: true},
		},
		Solutions: []Solution{
			{
				Key:     "qlora",
				Title:   "Llama-3 NIM + QLoRA Fine-Tune",
				Product: "NIM + NeMo Customizer",
				Desc: "Replace the 400B monolith with a fine-tuned 70B NIM specialized for medical triage, " +
					"deployed via LangGraph routing.",
				Impacts:           map[string]float64{"latency": -6.5, "cost": -12.0, "safety": 5, "throughput": 320},
				AnnualCostSavings: 320000,
				DefaultAlt:        "openai_gpt4",
				Alternatives: []Alternative{
					{
						Key:     "openai_gpt4",
						Title:   "OpenAI GPT-4o API",
						Product: "OpenAI",
						Impacts: map[string]float64{},
						Tradeoff: "Status quo. Hosted GPT-4o keeps latency, cost, and safety where they are today; " +
							"patient data leaves your VPC and there is no fine-tuning for medical terminology.",
					},
					{
						Key:               "self_hosted_llama",
						Title:             "Self-Hosted Llama (no NIM)",
						Product:           "Meta Llama + vLLM",
						Impacts:           map[string]float64{"latency": -3.0, "cost": -8.0, "safety": 3, "throughput": 150},
						AnnualCostSavings: 100000,
						Tradeoff:          "No enterprise SLA, manual GPU infra management, no built-in scaling.",
					},
				},
			},
			{
				Key:     "guardrails",
				Title:   "NeMo Guardrails (HIPAA)",
				Product: "NeMo Guardrails",
				Desc: "Inject programmable input/output rails for PII redaction, diagnosis hallucination " +
					"prevention, and HIPAA-compliant audit logging.",
				Impacts:           map[string]float64{"latency": 0.2, "cost": 0.5, "safety": 48, "throughput": -5},
				AnnualCostSavings: 45000,
			},
			{
				Key:     "mcp",
				Title:   "MCP Tool Server (EHR)",
				Product: "Model Context Protocol",
				Desc: "Standardized MCP server for secure, real-time retrieval from Epic/Cerner EHR " +
					"systems, replacing fragile REST wrappers.",
				Impacts:           map[string]float64{"latency": -1.0, "cost": 0, "safety": 4, "throughput": 80},
				AnnualCostSavings: 28000,
			},
			{
				Key:     "evaluator",
				Title:   "NeMo Evaluator (Weekly)",
				Product: "NeMo Evaluator",
				Desc: "Automated weekly evaluation of faithfulness, safety, and clinical accuracy via " +
					"RAGAS metrics plus custom medical benchmarks.",
				Impacts:           map[string]float64{"latency": 0, "cost": 0.2, "safety": 3, "throughput": 0},
				AnnualCostSavings: 15000,
			},
		},
		Nodes: []DiagramNode{
			{ID: "ehr", Label: "Epic/Cerner EHR", Subtitle: "Patient Record System", Type: ExternalNode},
			{ID: "intake", Label: "Patient Intake API", Subtitle: "Symptom Capture", Type: BaselineNode},
			{ID: "nim_llm", Label: "Llama-3 70B NIM", Subtitle: "Fine-Tuned Triage Model", Type: NvidiaNode, AddedBySolution: "qlora"},
			{ID: "gpt4", Label: "OpenAI GPT-4o", Subtitle: "Hosted General Model", Type: AlternativeNode, AddedBySolution: "qlora", AddedByAlt: "openai_gpt4"},
			{ID: "vllm", Label: "vLLM Cluster", Subtitle: "Self-Managed Serving", Type: AlternativeNode, AddedBySolution: "qlora", AddedByAlt: "self_hosted_llama"},
			{ID: "rails", Label: "NeMo Guardrails", Subtitle: "PII & Safety Rails", Type: NvidiaNode, AddedBySolution: "guardrails"},
			{ID: "mcp_ehr", Label: "MCP Tool Server", Subtitle: "EHR Tool Access", Type: NvidiaNode, AddedBySolution: "mcp"},
			{ID: "evaluator", Label: "NeMo Evaluator", Subtitle: "Weekly Eval Runs", Type: NvidiaNode, AddedBySolution: "evaluator"},
		},
		SuccessMessage: "SA Recommendation: By migrating to a fine-tuned NIM with QLoRA and deploying NeMo " +
			"Guardrails for HIPAA compliance, you achieved sub-2s latency and 95%+ safety — ready for " +
			"production rollout across all hospital departments.",
	},
	{
		ID:       "fintech",
		Title:    "Fraud Detection Pipeline",
		Industry: "FinTech",
		ProblemStatement: "Your real-time fraud detection pipeline processes 2K transactions/sec with an 8% " +
			"false-positive rate, 340ms detection latency, and fails 60% of SOX audit checks. NVIDIA " +
			"solutions can fix all four bottlenecks.",
		BaseAnnualCost: 890000,
		Metrics: []Metric{
			{Key: "throughput", Label: "Txns / Second", Unit: "", Baseline: 2000, Target: 15000, HigherIsBetter: true},
			{Key: "falsePositive", Label: "False Positive Rate", Unit: "%", Baseline: 8.0, Target: 1.0},
			{Key: "latency", Label: "Detection Latency", Unit: "ms", Baseline: 340, Target: 50},
			{Key: "compliance", Label: "SOX Compliance", Unit: "%", Baseline: 40, Target: 95, HigherIsBetter: true},
		},
		Solutions: []Solution{
			{
				Key:     "morpheus",
				Title:   "NVIDIA Morpheus Pipeline",
				Product: "NVIDIA Morpheus",
				Desc: "GPU-accelerated cybersecurity framework: real-time digital fingerprinting, anomaly " +
					"detection, and deep packet inspection for transaction streams.",
				Impacts:           map[string]float64{"throughput": 10000, "falsePositive": -5.5, "latency": -250, "compliance": 15},
				AnnualCostSavings: 420000,
				DefaultAlt:        "datadog_siem",
				Alternatives: []Alternative{
					{
						Key:     "datadog_siem",
						Title:   "Datadog SIEM + ML",
						Product: "Datadog",
						Impacts: map[string]float64{},
						Tradeoff: "Status quo. The CPU-based SIEM pipeline you run today holds every metric at its " +
							"current level, with high per-GB ingestion costs.",
					},
					{
						Key:               "aws_fraud",
						Title:             "AWS Fraud Detector",
						Product:           "AWS",
						Impacts:           map[string]float64{"throughput": 4000, "falsePositive": -3.0, "latency": -120, "compliance": 5},
						AnnualCostSavings: 180000,
						Tradeoff:          "Cloud-only, vendor lock-in. Limited to AWS-native data sources. Lower throughput.",
					},
				},
			},
			{
				Key:     "tensorrt",
				Title:   "TensorRT-LLM Optimization",
				Product: "TensorRT-LLM",
				Desc: "INT8/FP8 quantization with continuous batching for the fraud classification model. " +
					"6x throughput improvement at identical accuracy.",
				Impacts:           map[string]float64{"throughput": 3500, "falsePositive": -0.8, "latency": -45, "compliance": 0},
				AnnualCostSavings: 180000,
			},
			{
				Key:     "guardrails",
				Title:   "NeMo Guardrails (SOX)",
				Product: "NeMo Guardrails",
				Desc: "Audit trail rails ensuring every fraud decision is logged with reasoning, supporting " +
					"SOX Section 404 compliance requirements.",
				Impacts:           map[string]float64{"throughput": -200, "falsePositive": -0.5, "latency": 5, "compliance": 40},
				AnnualCostSavings: 95000,
			},
			{
				Key:     "curator",
				Title:   "NeMo Data Curator",
				Product: "NeMo Curator",
				Desc: "GPU-accelerated data pipeline: dedup, quality scoring, and PII removal across " +
					"historical transaction datasets for model retraining.",
				Impacts:           map[string]float64{"throughput": 0, "falsePositive": -1.0, "latency": 0, "compliance": 5},
				AnnualCostSavings: 65000,
			},
		},
		Nodes: []DiagramNode{
			{ID: "kafka", Label: "Kafka Stream", Subtitle: "Transaction Events", Type: ExternalNode},
			{ID: "detector", Label: "Fraud Detector", Subtitle: "Scoring Service", Type: BaselineNode},
			{ID: "morpheus", Label: "Morpheus Pipeline", Subtitle: "GPU Stream Analytics", Type: NvidiaNode, AddedBySolution: "morpheus"},
			{ID: "datadog", Label: "Datadog SIEM", Subtitle: "CPU ML Pipeline", Type: AlternativeNode, AddedBySolution: "morpheus", AddedByAlt: "datadog_siem"},
			{ID: "aws_fraud", Label: "AWS Fraud Detector", Subtitle: "Managed Fraud Scoring", Type: AlternativeNode, AddedBySolution: "morpheus", AddedByAlt: "aws_fraud"},
			{ID: "trt", Label: "TensorRT-LLM", Subtitle: "Quantized Inference", Type: NvidiaNode, AddedBySolution: "tensorrt"},
			{ID: "rails", Label: "NeMo Guardrails", Subtitle: "Audit Trail Rails", Type: NvidiaNode, AddedBySolution: "guardrails"},
			{ID: "curator", Label: "NeMo Curator", Subtitle: "Training Data Pipeline", Type: NvidiaNode, AddedBySolution: "curator"},
		},
		SuccessMessage: "SA Recommendation: Morpheus provides the backbone for real-time fraud detection at " +
			"15K+ TPS, while TensorRT-LLM optimizes inference throughput. NeMo Guardrails close the SOX " +
			"compliance gap with immutable audit trails.",
	},
	{
		ID:       "retail",
		Title:    "Customer Support Copilot",
		Industry: "Retail / SaaS",
		ProblemStatement: "Your AI support copilot costs $4.20 per interaction, resolves only 35% of tickets " +
			"autonomously, takes 12s to respond, and customer satisfaction sits at 3.1/5. NVIDIA solutions " +
			"can transform this economics.",
		BaseAnnualCost: 1260000,
		Metrics: []Metric{
			{Key: "costPerTicket", Label: "Cost / Interaction", Unit: "$", Baseline: 4.20, Target: 0.80},
			{Key: "resolution", Label: "Auto-Resolution", Unit: "%", Baseline: 35, Target: 75, HigherIsBetter: true},
			{Key: "latency", Label: "Response Time", Unit: "s", Baseline: 12.0, Target: 3.0},
			{Key: "csat", Label: "CSAT Score", Unit: "/5", Baseline: 3.1, Target: 4.5, HigherIsBetter: true},
		},
		Solutions: []Solution{
			{
				Key:     "nim_routing",
				Title:   "NIM Multi-Model Routing",
				Product: "NIM + LangGraph",
				Desc: "Route simple queries to Mistral-7B NIM ($0.02/1K tokens), escalate complex issues to " +
					"Llama-3.3-70B. LangGraph handles conditional routing.",
				Impacts:           map[string]float64{"costPerTicket": -2.80, "resolution": 15, "latency": -7.0, "csat": 0.4},
				AnnualCostSavings: 580000,
				DefaultAlt:        "openai_assistants",
				Alternatives: []Alternative{
					{
						Key:     "openai_assistants",
						Title:   "OpenAI Assistants API",
						Product: "OpenAI",
						Impacts: map[string]float64{},
						Tradeoff: "Status quo. The Assistants-based copilot you run today is what produced the " +
							"$4.20 per-interaction economics: higher per-token cost, no multi-model routing.",
					},
				},
			},
			{
				Key:     "retriever",
				Title:   "NeMo Retriever + Knowledge Base",
				Product: "NeMo Retriever",
				Desc: "End-to-end retrieval with hybrid search and reranking over your product docs, FAQs, " +
					"and past ticket resolutions.",
				Impacts:           map[string]float64{"costPerTicket": -0.30, "resolution": 22, "latency": -1.5, "csat": 0.6},
				AnnualCostSavings: 210000,
			},
			{
				Key:     "customizer",
				Title:   "NeMo Customizer (Domain Tune)",
				Product: "NeMo Customizer",
				Desc: "QLoRA fine-tune Mistral-7B on 50K historical resolved tickets. Dramatically boosts " +
					"first-contact resolution and tone quality.",
				Impacts:           map[string]float64{"costPerTicket": -0.15, "resolution": 8, "latency": 0, "csat": 0.5},
				AnnualCostSavings: 120000,
			},
			{
				Key:     "guardrails",
				Title:   "NeMo Guardrails (Brand Safety)",
				Product: "NeMo Guardrails",
				Desc: "Topic control, competitor mention blocking, refund policy enforcement, and " +
					"sentiment-aware escalation triggers.",
				Impacts:           map[string]float64{"costPerTicket": 0.05, "resolution": -2, "latency": 0.3, "csat": 0.3},
				AnnualCostSavings: 45000,
			},
		},
		Nodes: []DiagramNode{
			{ID: "helpdesk", Label: "Zendesk Helpdesk", Subtitle: "Ticket Intake", Type: ExternalNode},
			{ID: "copilot", Label: "Support Copilot", Subtitle: "Agent Frontend", Type: BaselineNode},
			{ID: "router", Label: "NIM Model Router", Subtitle: "Multi-Model Routing", Type: NvidiaNode, AddedBySolution: "nim_routing"},
			{ID: "assistants", Label: "OpenAI Assistants", Subtitle: "Hosted Assistant API", Type: AlternativeNode, AddedBySolution: "nim_routing", AddedByAlt: "openai_assistants"},
			{ID: "retriever", Label: "NeMo Retriever", Subtitle: "Hybrid Search + Rerank", Type: NvidiaNode, AddedBySolution: "retriever"},
			{ID: "customizer", Label: "NeMo Customizer", Subtitle: "Domain Fine-Tune", Type: NvidiaNode, AddedBySolution: "customizer"},
			{ID: "rails", Label: "NeMo Guardrails", Subtitle: "Brand Safety Rails", Type: NvidiaNode, AddedBySolution: "guardrails"},
		},
		SuccessMessage: "SA Recommendation: NIM multi-model routing with LangGraph slashed cost by 80% by " +
			"routing to Mistral-7B for L1 queries. NeMo Retriever brought auto-resolution to 75%+, while " +
			"domain fine-tuning pushed CSAT above 4.5.",
	},
	{
		ID:       "devops",
		Title:    "Code Review Agent",
		Industry: "DevOps / Platform",
		ProblemStatement: "Your AI code review agent takes 45 min per PR, catches only 40% of security " +
			"vulnerabilities, has 15% developer adoption, and costs $8.50 per review. NVIDIA-accelerated " +
			"solutions can 10x this workflow.",
		BaseAnnualCost: 720000,
		Metrics: []Metric{
			{Key: "prTime", Label: "PR Review Time", Unit: "min", Baseline: 45, Target: 5},
			{Key: "vulnDetection", Label: "Vuln Detection", Unit: "%", Baseline: 40, Target: 90, HigherIsBetter: true},
			{Key: "adoption", Label: "Dev Adoption", Unit: "%", Baseline: 15, Target: 80, HigherIsBetter: true},
			{Key: "costPerReview", Label: "Cost / Review", Unit: "$", Baseline: 8.50, Target: 1.50},
		},
		Solutions: []Solution{
			{
				Key:     "code_nim",
				Title:   "Nemotron-70B Code NIM",
				Product: "NIM (Nemotron-70B)",
				Desc: "NVIDIA-tuned model optimized for code review, bug detection, and automated inline " +
					"suggestions with 92% acceptance rate.",
				Impacts:           map[string]float64{"prTime": -32, "vulnDetection": 25, "adoption": 35, "costPerReview": -5.50},
				AnnualCostSavings: 340000,
				DefaultAlt:        "github_copilot",
				Alternatives: []Alternative{
					{
						Key:     "github_copilot",
						Title:   "GitHub Copilot Enterprise",
						Product: "GitHub / Microsoft",
						Impacts: map[string]float64{},
						Tradeoff: "Status quo. The Copilot-based reviewer you run today is what produced the " +
							"45-minute reviews and 15% adoption; no self-hosting option.",
					},
					{
						Key:               "sonarqube_ai",
						Title:             "SonarQube AI Code Review",
						Product:           "SonarSource",
						Impacts:           map[string]float64{"prTime": -10, "vulnDetection": 30, "adoption": 10, "costPerReview": -2.00},
						AnnualCostSavings: 120000,
						Tradeoff:          "Strong security scanning but slow — rule-based, not LLM-native. Low developer adoption.",
					},
				},
			},
			{
				Key:     "tensorrt",
				Title:   "TensorRT-LLM Serving",
				Product: "TensorRT-LLM + Triton",
				Desc: "FP8 quantized serving with continuous batching via Triton Inference Server. " +
					"Sub-second code analysis for files up to 10K LOC.",
				Impacts:           map[string]float64{"prTime": -6, "vulnDetection": 0, "adoption": 10, "costPerReview": -1.20},
				AnnualCostSavings: 95000,
			},
			{
				Key:     "guardrails",
				Title:   "NeMo Guardrails (Security)",
				Product: "NeMo Guardrails",
				Desc: "Enforce OWASP Top 10 scanning rails, secrets detection, and license compliance " +
					"checks on every PR review output.",
				Impacts:           map[string]float64{"prTime": 1, "vulnDetection": 28, "adoption": 5, "costPerReview": 0.10},
				AnnualCostSavings: 80000,
			},
			{
				Key:     "mcp",
				Title:   "MCP Server (Git + JIRA)",
				Product: "Model Context Protocol",
				Desc: "Standardized tool connections to GitHub, GitLab, JIRA, and Confluence, giving the " +
					"agent full context on related issues and docs.",
				Impacts:           map[string]float64{"prTime": -3, "vulnDetection": 5, "adoption": 15, "costPerReview": -0.30},
				AnnualCostSavings: 55000,
			},
		},
		Nodes: []DiagramNode{
			{ID: "github", Label: "GitHub", Subtitle: "PR Webhooks", Type: ExternalNode},
			{ID: "review_bot", Label: "Review Agent", Subtitle: "PR Analysis Service", Type: BaselineNode},
			{ID: "nemotron", Label: "Nemotron-70B NIM", Subtitle: "Code Review Model", Type: NvidiaNode, AddedBySolution: "code_nim"},
			{ID: "copilot_ent", Label: "Copilot Enterprise", Subtitle: "GitHub-Native Reviewer", Type: AlternativeNode, AddedBySolution: "code_nim", AddedByAlt: "github_copilot"},
			{ID: "sonar", Label: "SonarQube AI", Subtitle: "Rule-Based Scanner", Type: AlternativeNode, AddedBySolution: "code_nim", AddedByAlt: "sonarqube_ai"},
			{ID: "triton", Label: "Triton + TensorRT-LLM", Subtitle: "Quantized Serving", Type: NvidiaNode, AddedBySolution: "tensorrt"},
			{ID: "rails", Label: "NeMo Guardrails", Subtitle: "OWASP Scan Rails", Type: NvidiaNode, AddedBySolution: "guardrails"},
			{ID: "mcp_git", Label: "MCP Server", Subtitle: "Git + JIRA Tools", Type: NvidiaNode, AddedBySolution: "mcp"},
		},
		SuccessMessage: "SA Recommendation: Nemotron-70B delivers best-in-class code understanding, while " +
			"TensorRT-LLM brings review latency under 5 minutes. MCP integration gave the agent full repo + " +
			"JIRA context, driving developer adoption above 80%.",
	},
	{
		ID:       "legal",
		Title:    "Document Intelligence",
		Industry: "Legal / Insurance",
		ProblemStatement: "Your document processing pipeline handles 200 docs/day with 78% extraction " +
			"accuracy, takes 6 minutes per document, and fails 70% of redaction compliance audits. NVIDIA " +
			"AI can achieve 10x throughput at 98% accuracy.",
		BaseAnnualCost: 960000,
		Metrics: []Metric{
			{Key: "throughput", Label: "Docs / Day", Unit: "", Baseline: 200, Target: 2000, HigherIsBetter: true},
			{Key: "accuracy", Label: "Extraction Accuracy", Unit: "%", Baseline: 78, Target: 96, HigherIsBetter: true},
			{Key: "procTime", Label: "Time / Document", Unit: "min", Baseline: 6.0, Target: 0.5},
			{Key: "compliance", Label: "Redaction Compliance", Unit: "%", Baseline: 30, Target: 95, HigherIsBetter: true},
		},
		Solutions: []Solution{
			{
				Key:     "nim_embed",
				Title:   "NV-Embed-v2 + NeMo Retriever",
				Product: "NIM + NeMo Retriever",
				Desc: "State-of-the-art 1024-dim embeddings (#1 MTEB) with hybrid search + reranking for " +
					"semantic document understanding.",
				Impacts:           map[string]float64{"throughput": 800, "accuracy": 12, "procTime": -3.0, "compliance": 5},
				AnnualCostSavings: 310000,
				DefaultAlt:        "pinecone_openai",
				Alternatives: []Alternative{
					{
						Key:     "pinecone_openai",
						Title:   "OpenAI Embeddings + Pinecone",
						Product: "OpenAI + Pinecone",
						Impacts: map[string]float64{},
						Tradeoff: "Status quo. The hosted embedding stack you run today holds throughput and " +
							"accuracy at their current levels; lower embedding quality (#28 MTEB vs #1), cloud-only.",
					},
				},
			},
			{
				Key:     "curator",
				Title:   "NeMo Data Curator",
				Product: "NeMo Curator",
				Desc: "GPU-accelerated document pipeline: OCR cleaning, dedup, quality scoring, and " +
					"structured extraction from PDFs, images, and scans.",
				Impacts:           map[string]float64{"throughput": 600, "accuracy": 5, "procTime": -1.5, "compliance": 10},
				AnnualCostSavings: 190000,
			},
			{
				Key:     "guardrails",
				Title:   "NeMo Guardrails (PII/Redaction)",
				Product: "NeMo Guardrails",
				Desc: "Automated PII detection and redaction rails with configurable entity types (SSN, " +
					"DOB, medical records, financial data).",
				Impacts:           map[string]float64{"throughput": -50, "accuracy": 1, "procTime": 0.2, "compliance": 52},
				AnnualCostSavings: 125000,
			},
			{
				Key:     "customizer",
				Title:   "NeMo Customizer (Legal Tune)",
				Product: "NeMo Customizer",
				Desc: "Fine-tune extraction models on your specific document formats: contracts, claims, " +
					"policies, court filings.",
				Impacts:           map[string]float64{"throughput": 100, "accuracy": 4, "procTime": -0.3, "compliance": 3},
				AnnualCostSavings: 85000,
			},
		},
		Nodes: []DiagramNode{
			{ID: "docstore", Label: "Document Store (S3)", Subtitle: "Scanned Filings", Type: ExternalNode},
			{ID: "pipeline", Label: "Extraction Pipeline", Subtitle: "OCR + Parsing", Type: BaselineNode},
			{ID: "nvembed", Label: "NV-Embed-v2", Subtitle: "Text Embedding Model", Type: NvidiaNode, AddedBySolution: "nim_embed"},
			{ID: "pinecone", Label: "OpenAI + Pinecone", Subtitle: "Hosted Vector Search", Type: AlternativeNode, AddedBySolution: "nim_embed", AddedByAlt: "pinecone_openai"},
			{ID: "curator", Label: "NeMo Curator", Subtitle: "Document Cleaning", Type: NvidiaNode, AddedBySolution: "curator"},
			{ID: "rails", Label: "NeMo Guardrails", Subtitle: "PII Redaction Rails", Type: NvidiaNode, AddedBySolution: "guardrails"},
			{ID: "customizer", Label: "NeMo Customizer", Subtitle: "Format Fine-Tune", Type: NvidiaNode, AddedBySolution: "customizer"},
		},
		SuccessMessage: "SA Recommendation: NV-Embed-v2 with NeMo Retriever provides state-of-the-art " +
			"document understanding at 10x throughput. NeMo Data Curator automates the ingestion pipeline, " +
			"while Guardrails ensure 95%+ PII redaction compliance for regulated industries.",
	},
}
