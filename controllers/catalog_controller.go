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
	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
)

// AssessmentTypeController and ComplianceTypeController are plain name
// catalogs. Both are small reference tables, so list responses use the
// large page policy.

type AssessmentTypeController struct {
	repository shared.AssessmentTypeRepository
}

func NewAssessmentTypeController(repository shared.AssessmentTypeRepository) *AssessmentTypeController {
	return &AssessmentTypeController{repository: repository}
}

func (c *AssessmentTypeController) Create(ctx shared.Context) error {
	var req dtos.AssessmentTypeCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	assessmentType := models.AssessmentType{Name: req.Name}
	if err := c.repository.Create(nil, &assessmentType); err != nil {
		return err
	}

	return ctx.JSON(201, assessmentType)
}

func (c *AssessmentTypeController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.StandardPage)

	assessmentTypes, err := c.repository.FindAllPaged(nil, pageInfo)
	if err != nil {
		return err
	}

	return ctx.JSON(200, assessmentTypes)
}

func (c *AssessmentTypeController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "assessmentTypeID")
	if err != nil {
		return err
	}

	assessmentType, err := c.repository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, assessmentType)
}

func (c *AssessmentTypeController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "assessmentTypeID")
	if err != nil {
		return err
	}

	var req dtos.AssessmentTypeCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	assessmentType, err := c.repository.Read(id)
	if err != nil {
		return err
	}

	assessmentType.Name = req.Name
	if err := c.repository.Update(nil, &assessmentType); err != nil {
		return err
	}

	return ctx.JSON(200, assessmentType)
}

func (c *AssessmentTypeController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "assessmentTypeID")
	if err != nil {
		return err
	}

	if err := c.repository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}

type ComplianceTypeController struct {
	repository shared.ComplianceTypeRepository
}

func NewComplianceTypeController(repository shared.ComplianceTypeRepository) *ComplianceTypeController {
	return &ComplianceTypeController{repository: repository}
}

func (c *ComplianceTypeController) Create(ctx shared.Context) error {
	var req dtos.ComplianceTypeCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	complianceType := models.ComplianceType{Name: req.Name}
	if err := c.repository.Create(nil, &complianceType); err != nil {
		return err
	}

	return ctx.JSON(201, complianceType)
}

func (c *ComplianceTypeController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.StandardPage)

	complianceTypes, err := c.repository.FindAllPaged(nil, pageInfo)
	if err != nil {
		return err
	}

	return ctx.JSON(200, complianceTypes)
}

func (c *ComplianceTypeController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "complianceTypeID")
	if err != nil {
		return err
	}

	complianceType, err := c.repository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, complianceType)
}

func (c *ComplianceTypeController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "complianceTypeID")
	if err != nil {
		return err
	}

	var req dtos.ComplianceTypeCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	complianceType, err := c.repository.Read(id)
	if err != nil {
		return err
	}

	complianceType.Name = req.Name
	if err := c.repository.Update(nil, &complianceType); err != nil {
		return err
	}

	return ctx.JSON(200, complianceType)
}

func (c *ComplianceTypeController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "complianceTypeID")
	if err != nil {
		return err
	}

	if err := c.repository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
