package mcp

import (
	"context"

	"github.com/bobmcallan/intigriti-mcp/internal/intigriti"
)

func getPrograms(ctx context.Context, c *intigriti.Client, args arguments) (any, error) {
	var q intigriti.ProgramsQuery
	var err error
	if q.StatusID, err = args.optionalInt("status_id"); err != nil {
		return nil, err
	}
	if q.TypeID, err = args.optionalInt("type_id"); err != nil {
		return nil, err
	}
	if q.Following, err = args.optionalBool("following"); err != nil {
		return nil, err
	}
	if q.Limit, err = args.intOr("limit", intigriti.DefaultLimit); err != nil {
		return nil, err
	}
	if q.Offset, err = args.intOr("offset", 0); err != nil {
		return nil, err
	}
	return c.GetPrograms(ctx, q)
}

func getProgramDetails(ctx context.Context, c *intigriti.Client, args arguments) (any, error) {
	programID, err := args.requireString("program_id")
	if err != nil {
		return nil, err
	}
	return c.GetProgramDetails(ctx, programID)
}

func getProgramActivities(ctx context.Context, c *intigriti.Client, args arguments) (any, error) {
	var q intigriti.ActivitiesQuery
	var err error
	if q.CreatedSince, err = args.optionalInt64("created_since"); err != nil {
		return nil, err
	}
	if q.Following, err = args.optionalBool("following"); err != nil {
		return nil, err
	}
	if q.Limit, err = args.intOr("limit", intigriti.DefaultLimit); err != nil {
		return nil, err
	}
	if q.Offset, err = args.intOr("offset", 0); err != nil {
		return nil, err
	}
	return c.GetProgramActivities(ctx, q)
}

// programVersion extracts the program_id and version_id pair shared by the
// versioned program tools.
func programVersion(args arguments) (string, string, error) {
	programID, err := args.requireString("program_id")
	if err != nil {
		return "", "", err
	}
	versionID, err := args.requireString("version_id")
	if err != nil {
		return "", "", err
	}
	return programID, versionID, nil
}

func getProgramDomains(ctx context.Context, c *intigriti.Client, args arguments) (any, error) {
	programID, versionID, err := programVersion(args)
	if err != nil {
		return nil, err
	}
	return c.GetProgramDomains(ctx, programID, versionID)
}

func getProgramRulesOfEngagement(ctx context.Context, c *intigriti.Client, args arguments) (any, error) {
	programID, versionID, err := programVersion(args)
	if err != nil {
		return nil, err
	}
	return c.GetProgramRulesOfEngagement(ctx, programID, versionID)
}

func callCustomEndpoint(ctx context.Context, c *intigriti.Client, args arguments) (any, error) {
	method, err := args.requireString("method")
	if err != nil {
		return nil, err
	}
	endpoint, err := args.requireString("endpoint")
	if err != nil {
		return nil, err
	}
	params, err := args.optionalObject("params")
	if err != nil {
		return nil, err
	}
	body, _ := args.lookup("json_data")
	return c.CallEndpoint(ctx, method, endpoint, params, body)
}
