// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package target

// Built-in targets. These mirror the shortcuts teams reach for daily:
// Terraform plumbing per service/environment, AWS session helpers, and the
// lint/license tooling run in CI. Manifest files extend (never replace)
// this set.
var builtins = []Target{
	{
		Name:     "terraform-init",
		Category: "terraform",
		Usage:    "initialize the service's terraform working directory",
		Guards:   []string{"SERVICE", "ENV"},
		Steps: []Step{
			NewStep("terraform -chdir=${SERVICE}/terraform init -backend-config=${ENV}.s3.tfbackend"),
		},
	},
	{
		Name:     "terraform-plan",
		Category: "terraform",
		Usage:    "plan terraform changes for a service and environment",
		Guards:   []string{"SERVICE", "ENV"},
		Steps: []Step{
			NewStep("terraform -chdir=${SERVICE}/terraform init -backend-config=${ENV}.s3.tfbackend"),
			NewStep("terraform -chdir=${SERVICE}/terraform plan -var-file=${ENV}.tfvars"),
		},
	},
	{
		Name:     "terraform-apply",
		Category: "terraform",
		Usage:    "apply terraform changes for a service and environment",
		Guards:   []string{"SERVICE", "ENV"},
		Steps: []Step{
			NewStep("terraform -chdir=${SERVICE}/terraform init -backend-config=${ENV}.s3.tfbackend"),
			NewStep("terraform -chdir=${SERVICE}/terraform apply -var-file=${ENV}.tfvars -auto-approve"),
		},
	},
	{
		Name:     "terraform-destroy",
		Category: "terraform",
		Usage:    "destroy terraform-managed resources for a service and environment",
		Guards:   []string{"SERVICE", "ENV"},
		Steps: []Step{
			NewStep("terraform -chdir=${SERVICE}/terraform init -backend-config=${ENV}.s3.tfbackend"),
			NewStep("terraform -chdir=${SERVICE}/terraform destroy -var-file=${ENV}.tfvars"),
		},
	},
	{
		Name:     "aws-whoami",
		Category: "aws",
		Usage:    "show the active AWS caller identity",
		Steps: []Step{
			NewStep("aws sts get-caller-identity"),
		},
	},
	{
		Name:     "ecr-login",
		Category: "aws",
		Usage:    "authenticate docker against the account's ECR registry",
		Guards:   []string{"AWS_REGION", "AWS_ACCOUNT_ID"},
		Steps: []Step{
			NewStep("aws ecr get-login-password --region ${AWS_REGION} | docker login --username AWS --password-stdin ${AWS_ACCOUNT_ID}.dkr.ecr.${AWS_REGION}.amazonaws.com"),
		},
	},
	{
		Name:     "lint",
		Category: "quality",
		Usage:    "run the linter over the whole module",
		Steps: []Step{
			NewStep("golangci-lint run ./..."),
		},
	},
	{
		Name:     "license-check",
		Category: "quality",
		Usage:    "verify license headers via the containerized checker",
		Steps: []Step{
			NewStep("docker run --rm -v ${PWD}:/src ghcr.io/google/addlicense -check -ignore '**/testdata/**' /src"),
		},
	},
}

// Builtin returns a fresh registry seeded with the built-in targets.
func Builtin() *Registry {
	r := NewRegistry()
	for _, t := range builtins {
		// Built-in definitions are static; Add can only fail on a
		// programming error, which the registry tests catch.
		if err := r.Add(t); err != nil {
			panic(err)
		}
	}
	return r
}
