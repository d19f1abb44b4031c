// Copyright (C) 2025 helixsec
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/transformer"
)

type VulnerabilityController struct {
	vulnerabilityRepository  shared.VulnerabilityRepository
	assessmentTypeRepository shared.AssessmentTypeRepository
}

func NewVulnerabilityController(vulnerabilityRepository shared.VulnerabilityRepository, assessmentTypeRepository shared.AssessmentTypeRepository) *VulnerabilityController {
	return &VulnerabilityController{
		vulnerabilityRepository:  vulnerabilityRepository,
		assessmentTypeRepository: assessmentTypeRepository,
	}
}

func (c *VulnerabilityController) Create(ctx shared.Context) error {
	var req dtos.VulnerabilityCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	if _, err := c.assessmentTypeRepository.Read(req.CategoryOfTestingID); err != nil {
		return err
	}

	vulnerability := transformer.VulnerabilityCreateRequestToModel(req)
	if err := c.vulnerabilityRepository.Create(nil, &vulnerability); err != nil {
		return err
	}

	created, err := c.vulnerabilityRepository.Read(vulnerability.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(201, created)
}

// List filters by assessment_type (exact category name) and name
// (case-insensitive substring).
func (c *VulnerabilityController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.StandardPage)
	category := shared.NameFilter(ctx.QueryParam("assessment_type"))
	name := shared.NameFilter(ctx.QueryParam("name"))

	vulnerabilities, err := c.vulnerabilityRepository.FindAllPaged(nil, pageInfo, category, name)
	if err != nil {
		return err
	}

	return ctx.JSON(200, vulnerabilities)
}

func (c *VulnerabilityController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "vulnerabilityID")
	if err != nil {
		return err
	}

	vulnerability, err := c.vulnerabilityRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, vulnerability)
}

func (c *VulnerabilityController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "vulnerabilityID")
	if err != nil {
		return err
	}

	var patch dtos.VulnerabilityPatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return err
	}

	vulnerability, err := c.vulnerabilityRepository.Read(id)
	if err != nil {
		return err
	}

	if transformer.ApplyVulnerabilityPatch(patch, &vulnerability) {
		if patch.CategoryOfTestingID != nil {
			if _, err := c.assessmentTypeRepository.Read(*patch.CategoryOfTestingID); err != nil {
				return err
			}
		}
		if err := c.vulnerabilityRepository.Update(nil, &vulnerability); err != nil {
			return err
		}
	}

	updated, err := c.vulnerabilityRepository.Read(vulnerability.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, updated)
}

// Delete removes the catalog entry but keeps findings that reference it,
// their vulnerability reference is nulled out instead.
func (c *VulnerabilityController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "vulnerabilityID")
	if err != nil {
		return err
	}

	if err := c.vulnerabilityRepository.DeleteAndDetachFindings(id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
