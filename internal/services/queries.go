package services

// GraphQL documents used against the provider. Filter values are always
// passed as String, including ids and numeric legacy ids: the provider's
// filter inputs reject other scalar types.

const eventNodeFields = `id legacyId code title start end learningMode locationText`

const queryEventByID = `
query EventByID($id: String!) {
  events(filters: [{ field: id, operation: eq, value: $id }]) {
    edges { node { ` + eventNodeFields + ` } }
  }
}`

const queryEventByCode = `
query EventByCode($code: String!) {
  events(filters: [{ field: code, operation: eq, value: $code }]) {
    edges { node { ` + eventNodeFields + ` } }
  }
}`

const queryEventByLegacyID = `
query EventByLegacyID($legacyId: String!) {
  events(filters: [{ field: legacyId, operation: eq, value: $legacyId }]) {
    edges { node { ` + eventNodeFields + ` } }
  }
}`

const queryContactByEmail = `
query ContactByEmail($email: String!) {
  contacts(filters: [{ field: emailAddress, operation: eq, value: $email }]) {
    edges { node { id emailAddress } }
  }
}`

const mutationCreateContact = `
mutation CreateContact($input: ContactCreateInput!) {
  contact {
    create(input: $input) {
      contact { id }
      errors { label message value }
    }
  }
}`

const mutationRegisterContacts = `
mutation RegisterContacts($eventId: ID!, $contactIds: [ID!]!) {
  event {
    registerContacts(eventId: $eventId, input: { contacts: $contactIds }) {
      event { id }
      errors { label message value }
    }
  }
}`

// The provider addresses custom fields by definition key, not display name.
const mutationSetEventPublicURL = `
mutation SetEventPublicURL($eventId: ID!, $definitionKey: ID!, $value: String!) {
  event {
    update(eventId: $eventId, input: {
      customFieldValues: [{ definitionKey: $definitionKey, value: $value }]
    }) {
      event { id }
      errors { label message value }
    }
  }
}`

const queryTypename = `{ __typename }`
