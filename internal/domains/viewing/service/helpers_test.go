package service_test

import gDto "realty/shared/dto"

func dtoFilterNone() gDto.FilterGroup {
	return gDto.FilterGroup{}
}

func dtoParams(page, limit int) gDto.QueryParams {
	return gDto.QueryParams{Page: page, Limit: limit}
}
