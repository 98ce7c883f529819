package query

import "todo-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult
}

type TaskQueryResult struct {
	Result *common.TaskResult
}

type TaskQueryListResult struct {
	Result []*common.TaskResult
}
