package crawler

// GraphQL queries against the skill-mapping API. Soft skills carry no
// curriculum_id field upstream, so that query fetches all of them and
// filters related jobs/subjects to the curriculum instead.

const queryCurriculum = `
query GetCurriculum($curriculum_id: String!) {
  curriculums_by_pk(id: $curriculum_id) {
    id
    name
    name_th
    year
    faculty {
      id
      name
      name_th
    }
  }
}
`

const queryJobs = `
query GetJobs($curriculum_id: String!) {
  jobs(where: {curriculum_id: {_eq: $curriculum_id}}, order_by: {name: asc}) {
    id
    name
    name_th
    description
    description_th
    job_group {
      id
      name
      name_th
      job_field {
        id
        name
        name_th
      }
    }
    hard_skills(order_by: {skill: {name: asc}}) {
      level
      skill {
        id
        name
        name_th
      }
    }
    soft_skills(order_by: {skill: {name: asc}}) {
      level
      skill {
        id
        name
        name_th
      }
    }
  }
}
`

const queryHardSkills = `
query GetHardSkills($curriculum_id: String!) {
  hard_skills(where: {curriculum_id: {_eq: $curriculum_id}}, order_by: {name: asc}) {
    id
    name
    name_th
    description
    description_th
    levels(order_by: {level: asc}) {
      level
      description
      description_th
    }
  }
}
`

const querySoftSkills = `
query GetSoftSkills {
  soft_skills(order_by: {name: asc}) {
    id
    name
    name_th
    description
    description_th
    levels(order_by: {level: asc}) {
      level
      description
      description_th
    }
  }
}
`

const querySubjects = `
query GetSubjects($curriculum_id: String!) {
  curriculum_subjects(
    where: {curriculum_id: {_eq: $curriculum_id}},
    order_by: {subject: {code: asc}}
  ) {
    subject {
      id
      code
      name
      name_th
      hard_skills(order_by: {skill: {name: asc}}) {
        level
        skill {
          id
          name
          name_th
        }
      }
      soft_skills(order_by: {skill: {name: asc}}) {
        level
        skill {
          id
          name
          name_th
        }
      }
    }
  }
}
`

const queryJobFields = `
query GetJobFields($curriculum_id: String!) {
  job_fields(
    where: {job_groups: {jobs: {curriculum_id: {_eq: $curriculum_id}}}},
    order_by: {name: asc}
  ) {
    id
    name
    name_th
    job_groups(
      where: {jobs: {curriculum_id: {_eq: $curriculum_id}}},
      order_by: {name: asc}
    ) {
      id
      name
      name_th
    }
  }
}
`
